package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookNote struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	BookID    string    `gorm:"type:uuid;not null;index" json:"book_id"`
	Notes     string    `gorm:"not null" json:"notes"`
	CreatedAt time.Time `json:"created_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (n *BookNote) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}

func (BookNote) TableName() string {
	return "book_notes"
}
