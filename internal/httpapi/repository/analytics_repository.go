package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
)

type AnalyticsRepository interface {
	Create(ctx context.Context, record *models.AnalyticsRecord) error
	GetByUser(ctx context.Context, userID string) ([]models.AnalyticsRecord, error)
	GetByUserSince(ctx context.Context, userID string, since time.Time) ([]models.AnalyticsRecord, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Create(ctx context.Context, record *models.AnalyticsRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *analyticsRepository) GetByUser(ctx context.Context, userID string) ([]models.AnalyticsRecord, error) {
	var records []models.AnalyticsRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *analyticsRepository) GetByUserSince(ctx context.Context, userID string, since time.Time) ([]models.AnalyticsRecord, error) {
	var records []models.AnalyticsRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
