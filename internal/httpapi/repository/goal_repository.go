package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *models.ReadingGoal) error
	GetByID(ctx context.Context, id string) (*models.ReadingGoal, error)
	GetAllByUser(ctx context.Context, userID string) ([]models.ReadingGoal, error)
	// GetOverdueActive lists active goals whose end date is already past.
	GetOverdueActive(ctx context.Context, now time.Time) ([]models.ReadingGoal, error)
	// Save persists the whole recomputed goal, guarded by its revision.
	Save(ctx context.Context, goal *models.ReadingGoal) error
	Delete(ctx context.Context, id string) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.ReadingGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*models.ReadingGoal, error) {
	var goal models.ReadingGoal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) GetAllByUser(ctx context.Context, userID string) ([]models.ReadingGoal, error) {
	var goals []models.ReadingGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) GetOverdueActive(ctx context.Context, now time.Time) ([]models.ReadingGoal, error) {
	var goals []models.ReadingGoal
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", models.GoalStatusActive, now).
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) Save(ctx context.Context, goal *models.ReadingGoal) error {
	oldRevision := goal.Revision
	goal.Revision = oldRevision + 1
	res := r.db.WithContext(ctx).Model(&models.ReadingGoal{}).
		Where("id = ? AND revision = ?", goal.ID, oldRevision).
		Select("Progress", "ProgressPercentage", "CompletedBooks", "Status", "StreakDays", "LastUpdated", "Revision").
		Updates(goal)
	if res.Error != nil {
		goal.Revision = oldRevision
		return res.Error
	}
	if res.RowsAffected == 0 {
		goal.Revision = oldRevision
		return ErrStaleRecord
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ReadingGoal{}).Error
}
