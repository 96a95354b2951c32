package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.BookNote) error
	GetByID(ctx context.Context, id string) (*models.BookNote, error)
	GetByBook(ctx context.Context, bookID string) ([]models.BookNote, error)
	Delete(ctx context.Context, id string) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.BookNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*models.BookNote, error) {
	var note models.BookNote
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) GetByBook(ctx context.Context, bookID string) ([]models.BookNote, error) {
	var notes []models.BookNote
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("book_id = ?", bookID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BookNote{}).Error
}
