package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
)

type SummaryRepository interface {
	Create(ctx context.Context, summary *models.Summary) error
	GetByID(ctx context.Context, id string) (*models.Summary, error)
	GetByUser(ctx context.Context, userID string) ([]models.Summary, error)
	Update(ctx context.Context, summary *models.Summary) error
	Delete(ctx context.Context, id string) error
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(ctx context.Context, summary *models.Summary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *summaryRepository) GetByID(ctx context.Context, id string) (*models.Summary, error) {
	var summary models.Summary
	if err := r.db.WithContext(ctx).Preload("Book").Where("id = ?", id).First(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *summaryRepository) GetByUser(ctx context.Context, userID string) ([]models.Summary, error) {
	var summaries []models.Summary
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&summaries).Error
	return summaries, err
}

func (r *summaryRepository) Update(ctx context.Context, summary *models.Summary) error {
	return r.db.WithContext(ctx).Save(summary).Error
}

func (r *summaryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Summary{}).Error
}
