package listengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBoundaries(t *testing.T) {
	view := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	cases := []struct {
		name        string
		index, size int
		want        []int
	}{
		{"first page", 0, 8, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"partial last page", 1, 8, []int{9, 10}},
		{"exactly at end", 2, 5, []int{}},
		{"huge index", 1 << 61, 8, []int{}},
		{"huge index wrapping to zero", 1 << 62, 4, []int{}},
		{"negative index", -1, 8, []int{}},
		{"zero size", 0, 0, []int{}},
		{"negative size", 0, -3, []int{}},
		{"size larger than view", 0, int(^uint(0) >> 1), view},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Page(view, tc.index, tc.size)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPageIsDeterministicAndCopies(t *testing.T) {
	view := []int{1, 2, 3, 4, 5}

	first := Page(view, 1, 2)
	second := Page(view, 1, 2)
	assert.Equal(t, first, second)

	first[0] = 99
	assert.Equal(t, []int{3, 4}, Page(view, 1, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, view)
}

func TestNewPaginationWithHugePageSize(t *testing.T) {
	p := NewPagination(Cursor{Index: 0, Size: int(^uint(0) >> 1)}, 10)
	assert.Equal(t, 1, p.TotalPages)
}
