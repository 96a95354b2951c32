package dto

type CreateNotificationRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Type     string `json:"type,omitempty" binding:"omitempty,oneof=reading_reminder goal_reminder achievement system custom"`
	RefID    string `json:"ref_id,omitempty" binding:"omitempty,uuid"`
	RefType  string `json:"ref_type,omitempty" binding:"omitempty,oneof=book reading_goal reading_progress user"`
	Priority string `json:"priority,omitempty" binding:"omitempty,oneof=low normal high"`
}
