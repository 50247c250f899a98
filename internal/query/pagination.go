package query

import (
	"gorm.io/gorm"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Page is a page of a list, numbered from 1.
type Page struct {
	Number  int
	PerPage int
}

// NewPage returns the page with the number clamped to at least 1 and the
// page size clamped to [1, MaxPerPage].
func NewPage(number, perPage int) Page {
	return Page{
		Number:  max(number, 1),
		PerPage: min(max(perPage, 1), MaxPerPage),
	}
}

// Offset is the number of items on the pages before this one.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// Apply limits the query to the items on the page.
func (p Page) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.PerPage)
}

// Pagination is the navigation metadata of a page.
type Pagination struct {
	Page    int   `json:"page" example:"2"`        // Current page
	PerPage int   `json:"per_page" example:"20"`   // Items per page
	Total   int64 `json:"total" example:"57"`      // Number of items on all pages
	Pages   int   `json:"pages" example:"3"`       // Number of pages
	HasPrev bool  `json:"has_prev" example:"true"` // Is there a page before this one?
	HasNext bool  `json:"has_next" example:"true"` // Is there a page after this one?
	PrevNum *int  `json:"prev_num" example:"1"`    // Number of the previous page, if any
	NextNum *int  `json:"next_num" example:"3"`    // Number of the next page, if any
}

// Pagination returns the metadata for the page in a list of total items.
func (p Page) Pagination(total int64) Pagination {
	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))

	pagination := Pagination{
		Page:    p.Number,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
		HasPrev: p.Number > 1,
		HasNext: p.Number < pages,
	}

	if pagination.HasPrev {
		prev := p.Number - 1
		pagination.PrevNum = &prev
	}

	if pagination.HasNext {
		next := p.Number + 1
		pagination.NextNum = &next
	}

	return pagination
}
