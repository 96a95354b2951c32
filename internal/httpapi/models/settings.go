package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default theme colors.
const (
	DefaultBackground = "#ffffff"
	DefaultText       = "#000000"
	DefaultAccent     = "#6200ea"
)

type UserSettings struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Theme      string `gorm:"type:text;default:'light'" json:"theme"` // light, dark
	Background string `gorm:"default:'#ffffff'" json:"background"`
	TextColor  string `gorm:"column:text_color;default:'#000000'" json:"text"`
	Accent     string `gorm:"default:'#6200ea'" json:"accent"`
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

func (UserSettings) TableName() string {
	return "user_settings"
}
