package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
)

type RecommendationRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.Recommendation, error)
	Upsert(ctx context.Context, rec *models.Recommendation) error
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) GetByUser(ctx context.Context, userID string) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) Upsert(ctx context.Context, rec *models.Recommendation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"recommended_book_ids", "genres", "last_updated"}),
	}).Create(rec).Error
}
