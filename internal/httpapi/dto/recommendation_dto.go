package dto

type RebuildRecommendationRequest struct {
	UserID         string   `json:"user_id" binding:"required,uuid"`
	FavoriteGenres []string `json:"favorite_genres" binding:"required,min=1"`
}
