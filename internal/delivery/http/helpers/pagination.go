package helpers

import (
	"net/http"
	"strconv"

	"bizmeet/internal/domain"
)

// Pagination query parameter defaults and limits. The admin lists
// (entrepreneurs, participants, events) are table views; 25 rows per page
// matches the frontend's table height.
const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string.
// Missing, non-numeric, or non-positive values fall back to the defaults;
// page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	page := positiveInt(q.Get("page"), DefaultPage)
	size := positiveInt(q.Get("page_size"), DefaultPageSize)
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return domain.PaginationParams{Page: page, PageSize: size}
}

func positiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size,
// and total count. TotalPages is ceiling(total / pageSize), 0 when pageSize
// is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
