package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recommendation holds the genre-matched book list for a user. One record
// per user, rebuilt in place whenever the favorite genres change.
type Recommendation struct {
	ID                 string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID             string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	RecommendedBookIDs []string  `gorm:"column:recommended_book_ids;serializer:json" json:"recommended_books"`
	Genres             []string  `gorm:"serializer:json" json:"genres"`
	LastUpdated        time.Time `json:"last_updated"`
	CreatedAt          time.Time `json:"created_at"`
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (Recommendation) TableName() string {
	return "recommendations"
}
