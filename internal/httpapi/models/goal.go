package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal types: what the target counts.
const (
	GoalTypeBooks = "books"
	GoalTypePages = "pages"
	GoalTypeTime  = "time"
)

// Goal durations. Custom requires an explicit end date.
const (
	DurationDaily   = "daily"
	DurationWeekly  = "weekly"
	DurationMonthly = "monthly"
	DurationYearly  = "yearly"
	DurationCustom  = "custom"
)

// Goal lifecycle. Active is the only non-terminal state.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusFailed    = "failed"
	GoalStatusAbandoned = "abandoned"
)

// ReadingGoal is a user's reading target over a duration window, with
// progress and streak tracking.
type ReadingGoal struct {
	ID                 string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID             string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Type               string    `gorm:"type:text;not null" json:"type"`
	TargetBooks        int       `gorm:"default:0" json:"target_books,omitempty"`
	TargetPages        int       `gorm:"default:0" json:"target_pages,omitempty"`
	TargetMinutes      int       `gorm:"default:0" json:"target_minutes,omitempty"`
	Duration           string    `gorm:"type:text;not null" json:"duration"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	Progress           int       `gorm:"default:0" json:"progress"`
	ProgressPercentage float64   `gorm:"default:0" json:"progress_percentage"`
	CompletedBooks     []string  `gorm:"serializer:json" json:"completed_books"`
	Status             string    `gorm:"type:text;default:'active'" json:"status"`
	StreakDays         int       `gorm:"default:0" json:"streak_days"`
	LastUpdated        time.Time `json:"last_updated"`
	Revision           int64     `gorm:"default:0" json:"revision"`
	CreatedAt          time.Time `json:"created_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (g *ReadingGoal) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return
}

func (ReadingGoal) TableName() string {
	return "reading_goals"
}

// Target returns the target field matching the goal type.
func (g *ReadingGoal) Target() int {
	switch g.Type {
	case GoalTypeBooks:
		return g.TargetBooks
	case GoalTypePages:
		return g.TargetPages
	case GoalTypeTime:
		return g.TargetMinutes
	}
	return 0
}

// IsTerminal reports whether the goal accepts no further mutation.
func (g *ReadingGoal) IsTerminal() bool {
	return g.Status != GoalStatusActive
}

// HasCompletedBook reports whether bookID is already counted toward a
// books-type goal.
func (g *ReadingGoal) HasCompletedBook(bookID string) bool {
	for _, id := range g.CompletedBooks {
		if id == bookID {
			return true
		}
	}
	return false
}
