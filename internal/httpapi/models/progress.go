package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reading status values derived from completion percentage. Abandoned is the
// only status that is never derived; it has to be set explicitly.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// ReadingSession is one logged reading event. Sessions are append-only and
// ordered by insertion (auto-increment ID), not re-sorted by date.
type ReadingSession struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProgressID   string    `gorm:"type:uuid;not null;index" json:"progress_id"`
	Date         time.Time `json:"date"`
	PagesRead    int       `gorm:"not null" json:"pages_read"`
	TimeSpent    int       `gorm:"not null" json:"time_spent"` // in minutes
	ReadingSpeed float64   `gorm:"default:0" json:"reading_speed"` // pages per hour
	Notes        string    `json:"notes,omitempty"`
}

func (ReadingSession) TableName() string {
	return "reading_sessions"
}

// ReadingProgress is the per-user-per-book cumulative reading state derived
// from the session log.
type ReadingProgress struct {
	ID                      string           `gorm:"primaryKey;type:uuid" json:"id"`
	UserID                  string           `gorm:"type:uuid;not null;index:idx_user_book,unique" json:"user_id"`
	BookID                  string           `gorm:"type:uuid;not null;index:idx_user_book,unique" json:"book_id"`
	StartDate               time.Time        `json:"start_date"`
	LastReadDate            time.Time        `json:"last_read_date"`
	PagesRead               int              `gorm:"default:0" json:"pages_read"`
	TotalPages              int              `gorm:"not null" json:"total_pages"`
	CompletionPercentage    float64          `gorm:"default:0" json:"completion_percentage"`
	AvgReadingSpeed         float64          `gorm:"default:0" json:"avg_reading_speed"`         // pages per hour
	EstimatedTimeToComplete float64          `gorm:"default:0" json:"estimated_time_to_complete"` // in hours
	Status                  string           `gorm:"type:text;default:'not_started'" json:"status"`
	Sessions                []ReadingSession `gorm:"foreignKey:ProgressID" json:"sessions_log"`
	Revision                int64            `gorm:"default:0" json:"revision"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (p *ReadingProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}

// RecalculateStatus rederives the status from the completion percentage.
// An explicitly abandoned book stays abandoned unless completion reaches 100.
func (p *ReadingProgress) RecalculateStatus() {
	if p.Status == StatusAbandoned && p.CompletionPercentage < 100 {
		return
	}
	switch {
	case p.CompletionPercentage == 0:
		p.Status = StatusNotStarted
	case p.CompletionPercentage >= 100:
		p.Status = StatusCompleted
	default:
		p.Status = StatusInProgress
	}
}
