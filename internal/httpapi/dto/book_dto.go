package dto

type CreateBookRequest struct {
	Title         string `json:"title" binding:"required"`
	Author        string `json:"author" binding:"required"`
	Genre         string `json:"genre"`
	TotalPages    int    `json:"total_pages" binding:"required,min=1"`
	Description   string `json:"description"`
	CoverURL      string `json:"cover_url"`
	PublishedYear int    `json:"published_year"`
}

type UpdateBookRequest struct {
	Title         string `json:"title,omitempty"`
	Author        string `json:"author,omitempty"`
	Genre         string `json:"genre,omitempty"`
	TotalPages    int    `json:"total_pages,omitempty" binding:"omitempty,min=1"`
	Description   string `json:"description,omitempty"`
	CoverURL      string `json:"cover_url,omitempty"`
	PublishedYear int    `json:"published_year,omitempty"`
}

type CreateNoteRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	BookID string `json:"book_id" binding:"required,uuid"`
	Notes  string `json:"notes" binding:"required"`
}
