package listengine

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ID is the identifier type a collection may be keyed by.
type ID interface {
	~int64 | ~string
}

// Patch is a partial update. Fields absent from the payload must be left untouched by Apply.
type Patch[T any] interface {
	Apply(*T)
}

// IDAllocator hands out an identifier that is unused in existing.
type IDAllocator[K ID] func(existing []K) K

// NextInt64 returns max(existing)+1, or 1 for an empty collection. Once the
// maximum reaches math.MaxInt64 it hands out the smallest unused positive id.
func NextInt64(existing []int64) int64 {
	if len(existing) == 0 {
		return 1
	}
	top := slices.Max(existing)
	switch {
	case top < 1:
		return 1
	case top < math.MaxInt64:
		return top + 1
	}
	used := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		used[id] = struct{}{}
	}
	for id := int64(1); ; id++ {
		if _, ok := used[id]; !ok {
			return id
		}
	}
}

// validKey reports whether id can be addressed by path: integer keys must be
// positive, string keys non-empty.
func validKey[K ID](id K) bool {
	v := reflect.ValueOf(id)
	if v.Kind() == reflect.String {
		return v.String() != ""
	}
	return v.Int() > 0
}

func invalidKey[K ID](id K) *ValidationError {
	return &ValidationError{Fields: map[string]string{"id": fmt.Sprintf("ID %v must be a positive number", id)}}
}

// NewUUID allocates random string identifiers.
func NewUUID(existing []string) string {
	for {
		id := uuid.NewString()
		if !slices.Contains(existing, id) {
			return id
		}
	}
}

// ParseInt64 parses a path identifier for int64 keyed collections.
func ParseInt64(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrNotFound, raw)
	}
	return id, nil
}

// ParseString accepts any non-empty path identifier.
func ParseString(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}
	return raw, nil
}

// Label names an entity in feedback messages and logs.
type Label struct {
	Singular string // "Customer"
	Plural   string // "customers"
}

// Config describes one entity type to the engine. Call sites own one Config per list.
type Config[T any, K ID] struct {
	Entity string
	Label  Label

	Key    func(T) K
	SetKey func(*T, K)
	NextID IDAllocator[K]
	// Name is the display name used in feedback ("Customer \"Jane\" deleted successfully").
	Name func(T) string

	SearchFields []func(T) string
	Filters      map[string]func(T) string
	Sorters      map[string]func(a, b T) int

	// OnCreate fills defaulted fields before validation on Add.
	OnCreate func(*T, time.Time)
	// OnDuplicate adjusts a clone before it is appended. Nil disables Duplicate.
	OnDuplicate func(*T)

	// BulkActions are named patches applicable to the current selection.
	BulkActions map[string]BulkAction[T]

	DefaultPageSize int
}

// BulkAction is a named patch with the verb used in feedback text.
type BulkAction[T any] struct {
	Verb  string
	Patch Patch[T]
}

func (c *Config[T, K]) validate() error {
	switch {
	case c == nil:
		return fmt.Errorf("listengine: nil config")
	case c.Entity == "":
		return fmt.Errorf("listengine: entity name is required")
	case c.Key == nil || c.SetKey == nil || c.NextID == nil:
		return fmt.Errorf("listengine: %s: key accessors and allocator are required", c.Entity)
	case c.Name == nil:
		return fmt.Errorf("listengine: %s: name accessor is required", c.Entity)
	}
	return nil
}

func (c *Config[T, K]) pageSize() int {
	if c.DefaultPageSize > 0 {
		return c.DefaultPageSize
	}
	return DefaultPageSize
}
