package domain

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page selects a window of a list ordered by creation time, newest first.
type Page struct {
	Page  int
	Limit int
}

func NewPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type PageResult[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func NewPageResult[T any](data []T, total int, p Page) *PageResult[T] {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	if data == nil {
		data = make([]T, 0)
	}
	return &PageResult[T]{
		Data: data,
		Meta: PageMeta{Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages},
	}
}
