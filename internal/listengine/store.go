package listengine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vendorhub/dashboard/internal/feedback"
)

// Recorder observes mutation outcomes. observability.Metrics implements it.
type Recorder interface {
	ObserveMutation(entity, op, outcome string)
}

// StoreDeps groups the side-effect collaborators of a Store.
type StoreDeps struct {
	Logger   *slog.Logger
	Feedback feedback.Channel
	Metrics  Recorder
	Now      func() time.Time
}

// Store owns the current State of one list and applies transitions to it one at
// a time. Reads return immutable snapshots.
type Store[T any, K ID] struct {
	mu       sync.Mutex
	cfg      *Config[T, K]
	state    State[T, K]
	logger   *slog.Logger
	feedback feedback.Channel
	metrics  Recorder
	now      func() time.Time
}

// NewStore seeds a store for cfg.
func NewStore[T any, K ID](cfg *Config[T, K], seed []T, deps StoreDeps) (*Store[T, K], error) {
	state, err := NewState(cfg, seed)
	if err != nil {
		return nil, err
	}
	s := &Store[T, K]{
		cfg:      cfg,
		state:    state,
		logger:   deps.Logger,
		feedback: deps.Feedback,
		metrics:  deps.Metrics,
		now:      deps.Now,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.feedback == nil {
		s.feedback = feedback.Discard{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

// Entity returns the configured entity name.
func (s *Store[T, K]) Entity() string {
	return s.cfg.Entity
}

// Config returns the entity configuration.
func (s *Store[T, K]) Config() *Config[T, K] {
	return s.cfg
}

// Snapshot returns the current state value.
func (s *Store[T, K]) Snapshot() State[T, K] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Page renders the current page.
func (s *Store[T, K]) Page() PageView[T, K] {
	return s.Snapshot().Page()
}

// Get returns a record from the whole collection.
func (s *Store[T, K]) Get(id K) (T, error) {
	return s.Snapshot().Get(id)
}

// SetQuery replaces filters and sort in one step.
func (s *Store[T, K]) SetQuery(f FilterState, sort Sort) (PageView[T, K], error) {
	return s.transition(func(st State[T, K]) (State[T, K], error) {
		next, err := st.WithFilterState(f)
		if err != nil {
			return st, err
		}
		return next.WithSort(sort.By, sort.Dir)
	})
}

// SetSearch replaces the free-text search.
func (s *Store[T, K]) SetSearch(q string) PageView[T, K] {
	view, _ := s.transition(func(st State[T, K]) (State[T, K], error) {
		return st.WithSearch(q), nil
	})
	return view
}

// SetFilter sets one equality filter.
func (s *Store[T, K]) SetFilter(name, value string) (PageView[T, K], error) {
	return s.transition(func(st State[T, K]) (State[T, K], error) {
		return st.WithFilter(name, value)
	})
}

// SetCursor moves to index; a changed size rewinds to the first page.
func (s *Store[T, K]) SetCursor(c Cursor) PageView[T, K] {
	view, _ := s.transition(func(st State[T, K]) (State[T, K], error) {
		if c.Size > 0 && c.Size != st.cursor.Size {
			return st.WithPageSize(c.Size), nil
		}
		return st.WithPage(c.Index), nil
	})
	return view
}

// Toggle flips selection of id.
func (s *Store[T, K]) Toggle(id K) (SelectionSnapshot[K], error) {
	view, err := s.transition(func(st State[T, K]) (State[T, K], error) {
		return st.Toggle(id)
	})
	return view.Selection, err
}

// SelectAll selects the whole query view.
func (s *Store[T, K]) SelectAll() SelectionSnapshot[K] {
	view, _ := s.transition(func(st State[T, K]) (State[T, K], error) {
		return st.SelectAll(), nil
	})
	return view.Selection
}

// ClearSelection empties the selection.
func (s *Store[T, K]) ClearSelection() SelectionSnapshot[K] {
	view, _ := s.transition(func(st State[T, K]) (State[T, K], error) {
		return st.ClearSelection(), nil
	})
	return view.Selection
}

// Add creates a record.
func (s *Store[T, K]) Add(ctx context.Context, rec T) (T, error) {
	var out T
	err := s.mutate(ctx, "add", func(st State[T, K]) (State[T, K], string, error) {
		next, created, err := st.Add(rec, s.now())
		out = created
		return next, fmt.Sprintf("%s added successfully", st.cfg.Label.Singular), err
	})
	return out, err
}

// Edit applies a partial update.
func (s *Store[T, K]) Edit(ctx context.Context, id K, patch Patch[T]) (T, error) {
	var out T
	err := s.mutate(ctx, "edit", func(st State[T, K]) (State[T, K], string, error) {
		next, updated, err := st.Edit(id, patch)
		out = updated
		return next, fmt.Sprintf("%s updated successfully", st.cfg.Label.Singular), err
	})
	return out, err
}

// Remove deletes one record.
func (s *Store[T, K]) Remove(ctx context.Context, id K) (T, error) {
	var out T
	err := s.mutate(ctx, "remove", func(st State[T, K]) (State[T, K], string, error) {
		next, removed, err := st.Remove(id)
		if err != nil {
			return st, "", err
		}
		out = removed
		return next, fmt.Sprintf("%s %q deleted successfully", st.cfg.Label.Singular, st.cfg.Name(removed)), nil
	})
	return out, err
}

// RemoveMany deletes the listed records.
func (s *Store[T, K]) RemoveMany(ctx context.Context, ids []K) ([]T, error) {
	var out []T
	err := s.mutate(ctx, "remove_many", func(st State[T, K]) (State[T, K], string, error) {
		next, removed, err := st.RemoveMany(ids)
		out = removed
		return next, fmt.Sprintf("Delete applied to %d %s", len(removed), st.cfg.Label.Plural), err
	})
	return out, err
}

// RemoveSelected deletes the current selection and clears it.
func (s *Store[T, K]) RemoveSelected(ctx context.Context) ([]T, error) {
	var out []T
	err := s.mutate(ctx, "remove_many", func(st State[T, K]) (State[T, K], string, error) {
		next, removed, err := st.RemoveMany(st.SelectedIDs())
		if err != nil {
			return st, "", err
		}
		out = removed
		return next.ClearSelection(), fmt.Sprintf("Delete applied to %d %s", len(removed), st.cfg.Label.Plural), nil
	})
	return out, err
}

// Duplicate clones a record under a new identifier.
func (s *Store[T, K]) Duplicate(ctx context.Context, id K) (T, error) {
	var out T
	err := s.mutate(ctx, "duplicate", func(st State[T, K]) (State[T, K], string, error) {
		source, err := st.Get(id)
		if err != nil {
			return st, "", err
		}
		next, dup, err := st.Duplicate(id)
		out = dup
		return next, fmt.Sprintf("%s %q duplicated successfully", st.cfg.Label.Singular, st.cfg.Name(source)), err
	})
	return out, err
}

// UpdateMany applies patch to the listed records.
func (s *Store[T, K]) UpdateMany(ctx context.Context, ids []K, patch Patch[T], verb string) ([]T, error) {
	var out []T
	err := s.mutate(ctx, "update_many", func(st State[T, K]) (State[T, K], string, error) {
		next, changed, err := st.UpdateMany(ids, patch)
		out = changed
		return next, fmt.Sprintf("%s applied to %d %s", verb, len(changed), st.cfg.Label.Plural), err
	})
	return out, err
}

// UpdateAll applies patch to the whole collection regardless of the view.
func (s *Store[T, K]) UpdateAll(ctx context.Context, patch Patch[T], verb string) ([]T, error) {
	var out []T
	err := s.mutate(ctx, "update_many", func(st State[T, K]) (State[T, K], string, error) {
		next, changed, err := st.UpdateMany(st.keys(), patch)
		out = changed
		return next.ClearSelection(), fmt.Sprintf("%s applied to %d %s", verb, len(changed), st.cfg.Label.Plural), err
	})
	return out, err
}

// ApplyBulk runs a configured bulk action against the selection and clears it.
func (s *Store[T, K]) ApplyBulk(ctx context.Context, action string) ([]T, error) {
	bulk, ok := s.cfg.BulkActions[action]
	if !ok {
		return nil, fmt.Errorf("%s bulk action %q: %w", s.Entity(), action, ErrUnknownField)
	}
	var out []T
	err := s.mutate(ctx, "bulk_"+action, func(st State[T, K]) (State[T, K], string, error) {
		next, changed, err := st.UpdateMany(st.SelectedIDs(), bulk.Patch)
		if err != nil {
			return st, "", err
		}
		out = changed
		return next.ClearSelection(), fmt.Sprintf("%s applied to %d %s", bulk.Verb, len(changed), st.cfg.Label.Plural), nil
	})
	return out, err
}

func (s *Store[T, K]) transition(fn func(State[T, K]) (State[T, K], error)) (PageView[T, K], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.state)
	if err != nil {
		return s.state.Page(), err
	}
	s.state = next
	return next.Page(), nil
}

func (s *Store[T, K]) mutate(ctx context.Context, op string, fn func(State[T, K]) (State[T, K], string, error)) error {
	// Feedback is published under the lock so the slot always ends up holding
	// the message of the last applied mutation.
	s.mu.Lock()
	defer s.mu.Unlock()
	next, text, err := fn(s.state)
	if err == nil {
		s.state = next
	}

	entity := s.Entity()
	if err != nil {
		s.observe(op, "rejected")
		s.logger.Warn("list mutation rejected", slog.String("entity", entity), slog.String("op", op), slog.Any("error", err))
		s.notify(ctx, feedback.SeverityError, s.failureText(err))
		return err
	}
	s.observe(op, "applied")
	s.logger.Info("list mutation applied", slog.String("entity", entity), slog.String("op", op))
	s.notify(ctx, feedback.SeveritySuccess, text)
	return nil
}

func (s *Store[T, K]) failureText(err error) string {
	label := s.cfg.Label.Singular
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return "Please correct the highlighted fields"
	case errors.Is(err, ErrNotFound):
		return label + " not found"
	case errors.Is(err, ErrDuplicate):
		return label + " already exists"
	case errors.Is(err, ErrUnsupported):
		return "This action is not available for " + s.cfg.Label.Plural
	default:
		return err.Error()
	}
}

func (s *Store[T, K]) notify(ctx context.Context, severity feedback.Severity, text string) {
	if err := s.feedback.Publish(ctx, severity, text); err != nil {
		s.logger.Warn("publish feedback", slog.String("entity", s.Entity()), slog.Any("error", err))
	}
}

func (s *Store[T, K]) observe(op, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveMutation(s.Entity(), op, outcome)
	}
}
