package listengine

import "slices"

// Selection is an ordered set of checked identifiers. The zero value is empty.
// Values are immutable: every operation returns a new Selection.
type Selection[K ID] struct {
	ids []K
}

// NewSelection builds a selection from ids, dropping duplicates.
func NewSelection[K ID](ids ...K) Selection[K] {
	var s Selection[K]
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

func (s Selection[K]) Has(id K) bool {
	return slices.Contains(s.ids, id)
}

func (s Selection[K]) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected identifiers in selection order.
func (s Selection[K]) IDs() []K {
	return slices.Clone(s.ids)
}

// Toggle flips membership of id.
func (s Selection[K]) Toggle(id K) Selection[K] {
	if i := slices.Index(s.ids, id); i >= 0 {
		return Selection[K]{ids: slices.Delete(slices.Clone(s.ids), i, i+1)}
	}
	return Selection[K]{ids: append(slices.Clone(s.ids), id)}
}

// Clear empties the selection.
func (s Selection[K]) Clear() Selection[K] {
	return Selection[K]{}
}

// Retain keeps only identifiers for which keep returns true.
func (s Selection[K]) Retain(keep func(K) bool) Selection[K] {
	out := make([]K, 0, len(s.ids))
	for _, id := range s.ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return Selection[K]{ids: out}
}

// SelectAll selects exactly the identifiers of the given view.
func SelectAll[T any, K ID](view []T, key func(T) K) Selection[K] {
	ids := make([]K, 0, len(view))
	for _, item := range view {
		ids = append(ids, key(item))
	}
	return NewSelection(ids...)
}

// Prune drops identifiers that are not present in view.
func Prune[T any, K ID](s Selection[K], view []T, key func(T) K) Selection[K] {
	if s.Len() == 0 {
		return s
	}
	present := make(map[K]struct{}, len(view))
	for _, item := range view {
		present[key(item)] = struct{}{}
	}
	return s.Retain(func(id K) bool {
		_, ok := present[id]
		return ok
	})
}

// SelectionSnapshot is what a "select all" checkbox needs to render.
type SelectionSnapshot[K ID] struct {
	IDs           []K  `json:"ids"`
	Count         int  `json:"count"`
	Checked       bool `json:"checked"`
	Indeterminate bool `json:"indeterminate"`
}

// Snapshot reports checkbox state relative to a view of viewSize records.
func (s Selection[K]) Snapshot(viewSize int) SelectionSnapshot[K] {
	n := s.Len()
	ids := s.IDs()
	if ids == nil {
		ids = []K{}
	}
	return SelectionSnapshot[K]{
		IDs:           ids,
		Count:         n,
		Checked:       n > 0 && n == viewSize,
		Indeterminate: n > 0 && n < viewSize,
	}
}
