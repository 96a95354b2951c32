package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title         string    `gorm:"not null;index" json:"title"`
	Author        string    `gorm:"not null" json:"author"`
	Genre         string    `gorm:"index" json:"genre"`
	TotalPages    int       `gorm:"not null" json:"total_pages"`
	Description   string    `json:"description"`
	CoverURL      string    `json:"cover_url"`
	PublishedYear int       `json:"published_year"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (book *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
