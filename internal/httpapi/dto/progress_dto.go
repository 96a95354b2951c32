package dto

// DTOs for reading-progress operations.

// TrackProgressRequest logs one reading session. PagesRead is the new
// cumulative total for the book, not a delta on top of the previous value.
type TrackProgressRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	BookID     string `json:"book_id" binding:"required,uuid"`
	PagesRead  int    `json:"pages_read" binding:"min=0"`
	TotalPages int    `json:"total_pages" binding:"required,min=1"`
	TimeSpent  int    `json:"time_spent" binding:"min=0"` // in minutes
}

type GetProgressRequest struct {
	UserID string `uri:"user_id" binding:"required,uuid"`
	BookID string `uri:"book_id" binding:"required,uuid"`
}

type GetAllProgressRequest struct {
	UserID string `uri:"user_id" binding:"required,uuid"`
}

// ReadingStatsResponse is the per-user aggregate over every progress record.
type ReadingStatsResponse struct {
	TotalReadingTime int     `json:"total_reading_time"` // in minutes
	PagesLastWeek    int     `json:"pages_last_week"`
	AvgReadingSpeed  float64 `json:"avg_reading_speed"` // pages per hour
	CompletedBooks   int     `json:"completed_books"`
	InProgressBooks  int     `json:"in_progress_books"`
	TotalBooks       int     `json:"total_books"`
}
