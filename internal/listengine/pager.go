package listengine

const DefaultPageSize = 10

// Cursor addresses one page of a query view. Index is zero-based.
type Cursor struct {
	Index int `json:"index"`
	Size  int `json:"size"`
}

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes pagination metadata for a zero-based cursor.
func NewPagination(c Cursor, total int) Pagination {
	perPage := c.Size
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	index := c.Index
	if index < 0 {
		index = 0
	}
	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}
	return Pagination{Page: index, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Page returns view[index*size : index*size+size], or an empty slice when the
// cursor points past the end or is malformed.
func Page[T any](view []T, index, size int) []T {
	if index < 0 || size <= 0 {
		return []T{}
	}
	pages := len(view) / size
	if len(view)%size != 0 {
		pages++
	}
	if index >= pages {
		return []T{}
	}
	start := index * size
	end := start + size
	if end > len(view) {
		end = len(view)
	}
	out := make([]T, end-start)
	copy(out, view[start:end])
	return out
}
