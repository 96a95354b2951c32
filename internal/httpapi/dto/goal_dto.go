package dto

import "time"

// DTOs for reading-goal operations.

type CreateGoalRequest struct {
	UserID        string     `json:"user_id" binding:"required,uuid"`
	Type          string     `json:"type" binding:"required,oneof=books pages time"`
	TargetBooks   int        `json:"target_books" binding:"min=0"`
	TargetPages   int        `json:"target_pages" binding:"min=0"`
	TargetMinutes int        `json:"target_minutes" binding:"min=0"`
	Duration      string     `json:"duration" binding:"required,oneof=daily weekly monthly yearly custom"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"` // required when duration is custom
}

// GoalUpdateRequest is the tagged-union progress update: a completed book
// (books goals), a page delta (pages goals), or a minute delta (time goals).
// Which field is honored depends on the goal's type.
type GoalUpdateRequest struct {
	BookID      string `json:"book_id,omitempty" binding:"omitempty,uuid"`
	Completed   bool   `json:"completed,omitempty"`
	PagesRead   int    `json:"pages_read,omitempty" binding:"min=0"`
	MinutesRead int    `json:"minutes_read,omitempty" binding:"min=0"`
}

// GoalStatsResponse is the per-user aggregate over all goals.
type GoalStatsResponse struct {
	TotalGoals     int `json:"total_goals"`
	ActiveGoals    int `json:"active_goals"`
	CompletedGoals int `json:"completed_goals"`
	FailedGoals    int `json:"failed_goals"`
	AbandonedGoals int `json:"abandoned_goals"`
	CompletionRate int `json:"completion_rate"` // rounded percentage
	CurrentStreak  int `json:"current_streak"`  // best streak among active daily goals
}
