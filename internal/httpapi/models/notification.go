package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification kinds.
const (
	NotificationReadingReminder = "reading_reminder"
	NotificationGoalReminder    = "goal_reminder"
	NotificationAchievement     = "achievement"
	NotificationSystem          = "system"
	NotificationCustom          = "custom"
)

type Notification struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;index:idx_user_read" json:"user_id"`
	Title     string     `gorm:"not null" json:"title"`
	Message   string     `gorm:"not null" json:"message"`
	Type      string     `gorm:"type:text;default:'system';index" json:"type"`
	Read      bool       `gorm:"default:false;index:idx_user_read" json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	RefID     string     `gorm:"type:uuid" json:"ref_id,omitempty"`
	RefType   string     `json:"ref_type,omitempty"` // book, reading_goal, reading_progress, user
	Priority  string     `gorm:"type:text;default:'normal'" json:"priority"`
	CreatedAt time.Time  `json:"created_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}

func (Notification) TableName() string {
	return "notifications"
}
