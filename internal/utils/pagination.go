package utils

import (
	"fmt"
	"math"
	"strings"
)

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total      int
	PerPage    int
	Current    int
	Offset     int
	TotalPages int
}

// NewPagination creates pagination info
func NewPagination(total, perPage, current int) *PaginationInfo {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	return &PaginationInfo{
		Total:      total,
		PerPage:    perPage,
		Current:    current,
		Offset:     (current - 1) * perPage,
		TotalPages: totalPages,
	}
}

// Slice bounds the current page over a list of n items.
func (p *PaginationInfo) Slice(n int) (start, end int) {
	start = p.Offset
	if start > n {
		start = n
	}
	end = start + p.PerPage
	if end > n {
		end = n
	}
	return start, end
}

// GetRange returns the range of items on the current page (1-indexed)
func (p *PaginationInfo) GetRange() (start, end int) {
	start = p.Offset + 1
	end = p.Offset + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// HasNext returns true if there's a next page
func (p *PaginationInfo) HasNext() bool {
	return p.Current < p.TotalPages
}

// HasPrev returns true if there's a previous page
func (p *PaginationInfo) HasPrev() bool {
	return p.Current > 1
}

// FormatSummary returns a human-readable summary
func (p *PaginationInfo) FormatSummary() string {
	if p.Total == 0 {
		return "No results"
	}

	start, end := p.GetRange()
	if p.TotalPages == 1 {
		return fmt.Sprintf("Showing %d-%d of %d result%s", start, end, p.Total, plural(p.Total))
	}
	return fmt.Sprintf("Showing %d-%d of %d result%s (page %d of %d)",
		start, end, p.Total, plural(p.Total), p.Current, p.TotalPages)
}

// FormatNavigation returns navigation hints for CLI
func (p *PaginationInfo) FormatNavigation() string {
	if p.TotalPages <= 1 {
		return ""
	}

	var hints []string
	if p.HasPrev() {
		hints = append(hints, fmt.Sprintf("use --page %d for previous", p.Current-1))
	}
	if p.HasNext() {
		hints = append(hints, fmt.Sprintf("use --page %d for next", p.Current+1))
	}
	return strings.Join(hints, ", ")
}

// plural returns "s" if count is not 1
func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
