package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsRecord is one dashboard data point: time spent on a book on a
// given date. The dashboard endpoints aggregate over these records.
type AnalyticsRecord struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	BookID      string    `gorm:"type:uuid;not null" json:"book_id"`
	ReadingTime int       `gorm:"default:0" json:"reading_time"` // minutes spent reading
	Genre       string    `gorm:"not null" json:"genre"`
	Author      string    `gorm:"not null" json:"author"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	Date        time.Time `gorm:"index" json:"date"`
}

func (a *AnalyticsRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

func (AnalyticsRecord) TableName() string {
	return "analytics_records"
}
