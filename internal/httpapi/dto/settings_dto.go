package dto

type CustomColors struct {
	Background string `json:"background,omitempty" binding:"omitempty,hexcolor"`
	Text       string `json:"text,omitempty" binding:"omitempty,hexcolor"`
	Accent     string `json:"accent,omitempty" binding:"omitempty,hexcolor"`
}

type UpdateThemeRequest struct {
	UserID       string        `json:"user_id" binding:"required,uuid"`
	Theme        string        `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
	CustomColors *CustomColors `json:"custom_colors,omitempty"`
}
