package listengine

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

const (
	// Sort directions
	SortAsc  = "asc"
	SortDesc = "desc"
)

// placeholders are dropdown values that mean "no constraint".
var placeholders = map[string]struct{}{
	"":               {},
	"all":            {},
	"All":            {},
	"All Status":     {},
	"All Categories": {},
	"All Plans":      {},
	"All Types":      {},
}

// IsPlaceholder reports whether a filter value imposes no constraint.
func IsPlaceholder(value string) bool {
	_, ok := placeholders[value]
	return ok
}

// FilterState is the set of independent predicates narrowing a collection.
type FilterState struct {
	Search string            `json:"search"`
	Equals map[string]string `json:"filters,omitempty"`
}

// Sort orders the query view. An empty By keeps insertion order.
type Sort struct {
	By  string `json:"sort_by,omitempty"`
	Dir string `json:"sort_dir,omitempty"`
}

// Active reports whether any predicate constrains the view.
func (f FilterState) Active() bool {
	if strings.TrimSpace(f.Search) != "" {
		return true
	}
	for _, v := range f.Equals {
		if !IsPlaceholder(v) {
			return true
		}
	}
	return false
}

func (f FilterState) clone() FilterState {
	return FilterState{Search: f.Search, Equals: maps.Clone(f.Equals)}
}

// Query returns the records satisfying every active predicate, ordered by s.
// It never mutates items; unknown filter or sort names impose nothing.
func Query[T any, K ID](cfg *Config[T, K], items []T, f FilterState, s Sort) []T {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(f.Search))

	view := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesSearch(folder, cfg.SearchFields, item, needle) {
			continue
		}
		if !matchesFilters(cfg.Filters, item, f.Equals) {
			continue
		}
		view = append(view, item)
	}

	if cmp, ok := cfg.Sorters[s.By]; ok && cmp != nil {
		if s.Dir == SortDesc {
			slices.SortStableFunc(view, func(a, b T) int { return cmp(b, a) })
		} else {
			slices.SortStableFunc(view, cmp)
		}
	}
	return view
}

func matchesSearch[T any](folder cases.Caser, fields []func(T) string, item T, needle string) bool {
	for _, field := range fields {
		value := field(item)
		if value == "" {
			continue
		}
		if strings.Contains(folder.String(value), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](filters map[string]func(T) string, item T, equals map[string]string) bool {
	for name, want := range equals {
		if IsPlaceholder(want) {
			continue
		}
		get, ok := filters[name]
		if !ok || get == nil {
			continue
		}
		if get(item) != want {
			return false
		}
	}
	return true
}

// Deref returns the pointed-to string or "" for nil, so optional fields can be searched.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
