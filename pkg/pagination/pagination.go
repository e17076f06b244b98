package pagination

import (
	"gorm.io/gorm"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params are the normalized offset-pagination inputs.
type Params struct {
	Page    int
	PerPage int
}

// NewParams clamps raw query values into a valid Params.
func NewParams(page, perPage int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta is the wire-format pagination metadata.
type Meta struct {
	Total       int64 `json:"total"`
	LastPage    int   `json:"lastPage"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	Prev        *int  `json:"prev"`
	Next        *int  `json:"next"`
}

// NewMeta computes metadata for the given params and total row count.
// A page beyond the last one still reports the true total.
func NewMeta(p Params, total int64) Meta {
	lastPage := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	meta := Meta{
		Total:       total,
		LastPage:    lastPage,
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
	}

	if p.Page > 1 {
		prev := p.Page - 1
		meta.Prev = &prev
	}
	if p.Page < lastPage {
		next := p.Page + 1
		meta.Next = &next
	}
	return meta
}

// Envelope is the standard paginated list response.
type Envelope[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// NewEnvelope wraps a page of rows. Data is never null on the wire.
func NewEnvelope[T any](data []T, p Params, total int64) *Envelope[T] {
	if data == nil {
		data = []T{}
	}
	return &Envelope[T]{
		Data: data,
		Meta: NewMeta(p, total),
	}
}

// Scope applies offset/limit to a gorm query.
func Scope(p Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}
