package listengine

import (
	"fmt"
	"slices"
	"time"

	"github.com/mohae/deepcopy"
)

// State is the complete, immutable state of one list screen: the collection,
// the filter and sort applied to it, the selection and the page cursor.
// Every transition returns a new State and leaves the receiver untouched.
//
// Invariants held after every transition:
//   - identifiers are unique within items;
//   - the selection is a subset of the query view;
//   - the cursor index is 0 after any filter, search or page-size change.
type State[T any, K ID] struct {
	cfg       *Config[T, K]
	items     []T
	filter    FilterState
	sort      Sort
	selection Selection[K]
	cursor    Cursor
}

// NewState seeds a state from static data. Seed identifiers must be unique;
// zero identifiers are allocated in order.
func NewState[T any, K ID](cfg *Config[T, K], seed []T) (State[T, K], error) {
	if err := cfg.validate(); err != nil {
		return State[T, K]{}, err
	}
	s := State[T, K]{
		cfg:    cfg,
		items:  make([]T, 0, len(seed)),
		cursor: Cursor{Size: cfg.pageSize()},
	}
	var zero K
	for _, rec := range seed {
		rec = clone(rec)
		if id := cfg.Key(rec); id == zero {
			newID, err := s.allocate()
			if err != nil {
				return State[T, K]{}, fmt.Errorf("seed %s: %w", cfg.Entity, err)
			}
			cfg.SetKey(&rec, newID)
		} else if !validKey(id) {
			return State[T, K]{}, fmt.Errorf("seed %s: %w", cfg.Entity, invalidKey(id))
		}
		if s.index(cfg.Key(rec)) >= 0 {
			return State[T, K]{}, fmt.Errorf("seed %s: %w: %v", cfg.Entity, ErrDuplicate, cfg.Key(rec))
		}
		s.items = append(s.items, rec)
	}
	return s, nil
}

func (s State[T, K]) Config() *Config[T, K] { return s.cfg }
func (s State[T, K]) Filter() FilterState   { return s.filter.clone() }
func (s State[T, K]) Sort() Sort            { return s.sort }
func (s State[T, K]) Cursor() Cursor        { return s.cursor }
func (s State[T, K]) Len() int              { return len(s.items) }

// Items returns a copy of the whole collection in insertion order.
func (s State[T, K]) Items() []T {
	out := make([]T, len(s.items))
	for i, it := range s.items {
		out[i] = clone(it)
	}
	return out
}

// Get looks a record up in the whole collection.
func (s State[T, K]) Get(id K) (T, error) {
	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %v: %w", s.cfg.Entity, id, ErrNotFound)
	}
	return clone(s.items[i]), nil
}

// View is the query view: the filtered, sorted subset of the collection.
func (s State[T, K]) View() []T {
	return Query(s.cfg, s.items, s.filter, s.sort)
}

// PageView is one rendered page together with its metadata and selection state.
type PageView[T any, K ID] struct {
	Items      []T                  `json:"items"`
	Pagination Pagination           `json:"pagination"`
	Selection  SelectionSnapshot[K] `json:"selection"`
	Filter     FilterState          `json:"filter"`
	Sort       Sort                 `json:"sort"`
}

// Page slices the current view at the cursor.
func (s State[T, K]) Page() PageView[T, K] {
	view := s.View()
	return PageView[T, K]{
		Items:      Page(view, s.cursor.Index, s.cursor.Size),
		Pagination: NewPagination(s.cursor, len(view)),
		Selection:  s.selection.Snapshot(len(view)),
		Filter:     s.filter.clone(),
		Sort:       s.sort,
	}
}

// Selection returns the checkbox snapshot relative to the current view.
func (s State[T, K]) Selection() SelectionSnapshot[K] {
	return s.selection.Snapshot(len(s.View()))
}

// WithSearch replaces the free-text search.
func (s State[T, K]) WithSearch(q string) State[T, K] {
	next := s.copyMeta()
	next.filter.Search = q
	return next.afterFilterChange()
}

// WithFilter sets one named equality filter. Placeholder values clear it.
func (s State[T, K]) WithFilter(name, value string) (State[T, K], error) {
	if _, ok := s.cfg.Filters[name]; !ok {
		return s, fmt.Errorf("%s filter %q: %w", s.cfg.Entity, name, ErrUnknownField)
	}
	next := s.copyMeta()
	if next.filter.Equals == nil {
		next.filter.Equals = map[string]string{}
	}
	if IsPlaceholder(value) {
		delete(next.filter.Equals, name)
	} else {
		next.filter.Equals[name] = value
	}
	return next.afterFilterChange(), nil
}

// WithFilterState replaces search and all equality filters at once.
func (s State[T, K]) WithFilterState(f FilterState) (State[T, K], error) {
	next := s.copyMeta()
	next.filter = FilterState{Search: f.Search, Equals: map[string]string{}}
	for name, value := range f.Equals {
		if _, ok := s.cfg.Filters[name]; !ok {
			return s, fmt.Errorf("%s filter %q: %w", s.cfg.Entity, name, ErrUnknownField)
		}
		if !IsPlaceholder(value) {
			next.filter.Equals[name] = value
		}
	}
	return next.afterFilterChange(), nil
}

// WithSort orders the view. An empty key restores insertion order.
func (s State[T, K]) WithSort(by, dir string) (State[T, K], error) {
	if by != "" {
		if _, ok := s.cfg.Sorters[by]; !ok {
			return s, fmt.Errorf("%s sort %q: %w", s.cfg.Entity, by, ErrUnknownField)
		}
	}
	if dir != SortDesc {
		dir = SortAsc
	}
	next := s.copyMeta()
	next.sort = Sort{By: by, Dir: dir}
	return next, nil
}

// WithPage moves the cursor. Out of range pages render empty rather than fail.
func (s State[T, K]) WithPage(index int) State[T, K] {
	next := s.copyMeta()
	if index < 0 {
		index = 0
	}
	next.cursor.Index = index
	return next
}

// WithPageSize changes the page size and rewinds to the first page.
func (s State[T, K]) WithPageSize(size int) State[T, K] {
	next := s.copyMeta()
	if size <= 0 {
		size = s.cfg.pageSize()
	}
	next.cursor = Cursor{Index: 0, Size: size}
	return next
}

// Toggle flips the selection of a record in the current view.
func (s State[T, K]) Toggle(id K) (State[T, K], error) {
	if !slices.ContainsFunc(s.View(), func(t T) bool { return s.cfg.Key(t) == id }) {
		return s, fmt.Errorf("%s %v not in view: %w", s.cfg.Entity, id, ErrNotFound)
	}
	next := s.copyMeta()
	next.selection = s.selection.Toggle(id)
	return next, nil
}

// SelectAll selects exactly the records of the current view.
func (s State[T, K]) SelectAll() State[T, K] {
	next := s.copyMeta()
	next.selection = SelectAll(s.View(), s.cfg.Key)
	return next
}

// ClearSelection empties the selection.
func (s State[T, K]) ClearSelection() State[T, K] {
	next := s.copyMeta()
	next.selection = s.selection.Clear()
	return next
}

// SelectedIDs returns the selection in the order records were checked.
func (s State[T, K]) SelectedIDs() []K {
	return s.selection.IDs()
}

// Add validates and appends a record. A zero identifier is allocated.
func (s State[T, K]) Add(rec T, now time.Time) (State[T, K], T, error) {
	var zero T
	rec = clone(rec)
	if s.cfg.OnCreate != nil {
		s.cfg.OnCreate(&rec, now)
	}
	var zeroID K
	if id := s.cfg.Key(rec); id == zeroID {
		newID, err := s.allocate()
		if err != nil {
			return s, zero, err
		}
		s.cfg.SetKey(&rec, newID)
	} else if !validKey(id) {
		return s, zero, invalidKey(id)
	} else if s.index(id) >= 0 {
		return s, zero, fmt.Errorf("%s %v: %w", s.cfg.Entity, id, ErrDuplicate)
	}
	if err := ValidateRecord(rec); err != nil {
		return s, zero, err
	}
	next := s.copyMeta()
	next.items = append(slices.Clone(s.items), rec)
	return next.afterMutation(), clone(rec), nil
}

// Edit merges patch into the record with the given id and re-validates it.
func (s State[T, K]) Edit(id K, patch Patch[T]) (State[T, K], T, error) {
	var zero T
	i := s.index(id)
	if i < 0 {
		return s, zero, fmt.Errorf("%s %v: %w", s.cfg.Entity, id, ErrNotFound)
	}
	updated := clone(s.items[i])
	patch.Apply(&updated)
	s.cfg.SetKey(&updated, id)
	if err := ValidateRecord(updated); err != nil {
		return s, zero, err
	}
	next := s.copyMeta()
	next.items = slices.Clone(s.items)
	next.items[i] = updated
	return next.afterMutation(), clone(updated), nil
}

// UpdateMany applies one patch to every listed record. Either all succeed or none.
func (s State[T, K]) UpdateMany(ids []K, patch Patch[T]) (State[T, K], []T, error) {
	items := slices.Clone(s.items)
	var changed []T
	for i := range items {
		if !slices.Contains(ids, s.cfg.Key(items[i])) {
			continue
		}
		updated := clone(items[i])
		patch.Apply(&updated)
		s.cfg.SetKey(&updated, s.cfg.Key(items[i]))
		if err := ValidateRecord(updated); err != nil {
			return s, nil, fmt.Errorf("%s %v: %w", s.cfg.Entity, s.cfg.Key(items[i]), err)
		}
		items[i] = updated
		changed = append(changed, clone(updated))
	}
	if len(changed) == 0 {
		return s, nil, fmt.Errorf("%s: %w", s.cfg.Entity, ErrNotFound)
	}
	next := s.copyMeta()
	next.items = items
	return next.afterMutation(), changed, nil
}

// Remove deletes one record.
func (s State[T, K]) Remove(id K) (State[T, K], T, error) {
	var zero T
	i := s.index(id)
	if i < 0 {
		return s, zero, fmt.Errorf("%s %v: %w", s.cfg.Entity, id, ErrNotFound)
	}
	removed := s.items[i]
	next := s.copyMeta()
	next.items = slices.Delete(slices.Clone(s.items), i, i+1)
	return next.afterMutation(), removed, nil
}

// RemoveMany deletes every listed record that exists. At least one must match.
func (s State[T, K]) RemoveMany(ids []K) (State[T, K], []T, error) {
	var removed []T
	kept := make([]T, 0, len(s.items))
	for _, it := range s.items {
		if slices.Contains(ids, s.cfg.Key(it)) {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	if len(removed) == 0 {
		return s, nil, fmt.Errorf("%s: %w", s.cfg.Entity, ErrNotFound)
	}
	next := s.copyMeta()
	next.items = kept
	return next.afterMutation(), removed, nil
}

// Duplicate deep-copies a record under a fresh identifier.
func (s State[T, K]) Duplicate(id K) (State[T, K], T, error) {
	var zero T
	if s.cfg.OnDuplicate == nil {
		return s, zero, fmt.Errorf("%s duplicate: %w", s.cfg.Entity, ErrUnsupported)
	}
	i := s.index(id)
	if i < 0 {
		return s, zero, fmt.Errorf("%s %v: %w", s.cfg.Entity, id, ErrNotFound)
	}
	newID, err := s.allocate()
	if err != nil {
		return s, zero, err
	}
	dup := clone(s.items[i])
	s.cfg.SetKey(&dup, newID)
	s.cfg.OnDuplicate(&dup)
	if err := ValidateRecord(dup); err != nil {
		return s, zero, err
	}
	next := s.copyMeta()
	next.items = append(slices.Clone(s.items), dup)
	return next.afterMutation(), clone(dup), nil
}

// copyMeta returns a shallow copy sharing the items slice. Callers replace
// items wholesale and never write into the shared backing array.
func (s State[T, K]) copyMeta() State[T, K] {
	next := s
	next.filter = s.filter.clone()
	return next
}

func (s State[T, K]) afterFilterChange() State[T, K] {
	s.cursor.Index = 0
	s.selection = Prune(s.selection, s.View(), s.cfg.Key)
	return s
}

func (s State[T, K]) afterMutation() State[T, K] {
	s.selection = Prune(s.selection, s.View(), s.cfg.Key)
	return s
}

// allocate asks the configured allocator for an identifier and refuses one
// that is already taken or not addressable.
func (s State[T, K]) allocate() (K, error) {
	id := s.cfg.NextID(s.keys())
	if !validKey(id) || s.index(id) >= 0 {
		return id, fmt.Errorf("%s allocated id %v: %w", s.cfg.Entity, id, ErrDuplicate)
	}
	return id, nil
}

func (s State[T, K]) index(id K) int {
	return slices.IndexFunc(s.items, func(t T) bool { return s.cfg.Key(t) == id })
}

func (s State[T, K]) keys() []K {
	out := make([]K, len(s.items))
	for i, it := range s.items {
		out[i] = s.cfg.Key(it)
	}
	return out
}

func clone[T any](v T) T {
	return deepcopy.Copy(v).(T)
}
