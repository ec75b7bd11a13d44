// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"strconv"
)

type Page[T any] struct {
	Items      []T  `json:"-"`
	Number     int  `json:"currentPage"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ParsePage turns the raw `page` query value into a page number. Absent or
// garbage input means page 1; clamping to the upper bound happens in Paginate
// once the total is known.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate returns the requested page of items. Out-of-range page numbers
// clamp to the nearest valid page rather than failing.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
