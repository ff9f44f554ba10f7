package models

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func (m PaginationMeta) HasPrev() bool { return m.Page > 1 }

func (m PaginationMeta) HasNext() bool { return m.Page < m.TotalPages }

func (m PaginationMeta) PrevPage() int { return m.Page - 1 }

func (m PaginationMeta) NextPage() int { return m.Page + 1 }
