package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *models.ReadingProgress) error
	GetByUserAndBook(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error)
	GetAllByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error)
	// Save persists the recomputed record and appends the given session in one
	// transaction, guarded by the record's revision. A concurrent writer that
	// got there first makes Save return ErrStaleRecord.
	Save(ctx context.Context, progress *models.ReadingProgress, session *models.ReadingSession) error
	Delete(ctx context.Context, userID, bookID string) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, progress *models.ReadingProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) GetByUserAndBook(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error) {
	var progress models.ReadingProgress
	err := r.db.WithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			// insertion order, not date order
			return db.Order("reading_sessions.id ASC")
		}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) GetAllByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error) {
	var list []models.ReadingProgress
	err := r.db.WithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("reading_sessions.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("last_read_date DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *progressRepository) Save(ctx context.Context, progress *models.ReadingProgress, session *models.ReadingSession) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		oldRevision := progress.Revision
		res := tx.Model(&models.ReadingProgress{}).
			Where("id = ? AND revision = ?", progress.ID, oldRevision).
			Updates(map[string]any{
				"pages_read":                 progress.PagesRead,
				"completion_percentage":      progress.CompletionPercentage,
				"avg_reading_speed":          progress.AvgReadingSpeed,
				"estimated_time_to_complete": progress.EstimatedTimeToComplete,
				"last_read_date":             progress.LastReadDate,
				"status":                     progress.Status,
				"revision":                   oldRevision + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleRecord
		}
		progress.Revision = oldRevision + 1

		if session != nil {
			session.ProgressID = progress.ID
			if err := tx.Create(session).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *progressRepository) Delete(ctx context.Context, userID, bookID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.ReadingProgress{}).Error
}
