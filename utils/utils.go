package utils

import "math"

// Pagination represents the pagination details.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination creates a Pagination object.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = 10 // Default page size
	}
	if page <= 0 {
		page = 1 // Default page
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

// Bounds returns the half-open [start, end) slice range of the current page.
// Pages past the end yield an empty range.
func (p *Pagination) Bounds() (int, int) {
	// Compare by division so huge page numbers or sizes cannot overflow.
	if p.CurrentPage-1 > p.TotalItems/p.PageSize {
		return p.TotalItems, p.TotalItems
	}
	start := (p.CurrentPage - 1) * p.PageSize
	if start > p.TotalItems {
		start = p.TotalItems
	}
	end := p.TotalItems
	if p.PageSize < p.TotalItems-start {
		end = start + p.PageSize
	}
	return start, end
}
