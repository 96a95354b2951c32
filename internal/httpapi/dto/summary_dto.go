package dto

type CreateSummaryRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	BookID  string `json:"book_id" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}

type UpdateSummaryRequest struct {
	Content string `json:"content" binding:"required"`
}
