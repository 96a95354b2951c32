package dto

// DTOs for the analytics dashboard.

type RecordAnalyticsRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	BookID      string `json:"book_id" binding:"required,uuid"`
	ReadingTime int    `json:"reading_time" binding:"min=0"` // in minutes
	Completed   bool   `json:"completed"`
}

type DashboardOverviewResponse struct {
	BooksRead       int     `json:"books_read"`
	ReadingTime     int     `json:"reading_time"` // in minutes
	AvgReadingSpeed float64 `json:"avg_reading_speed"`
}

// WeekdayBucket is one bar of the reading-time heatmap.
type WeekdayBucket struct {
	Weekday string `json:"weekday"`
	Minutes int    `json:"minutes"`
}
