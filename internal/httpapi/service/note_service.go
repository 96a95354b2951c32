package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/repository"
)

type NoteService interface {
	Create(ctx context.Context, req dto.CreateNoteRequest) (*models.BookNote, error)
	ListByBook(ctx context.Context, bookID string) ([]models.BookNote, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	repo     repository.NoteRepository
	bookRepo repository.BookRepository
}

func NewNoteService(repo repository.NoteRepository, bookRepo repository.BookRepository) NoteService {
	return &noteService{repo: repo, bookRepo: bookRepo}
}

func (s *noteService) Create(ctx context.Context, req dto.CreateNoteRequest) (*models.BookNote, error) {
	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %s", ErrNotFound, req.BookID)
		}
		return nil, err
	}

	note := &models.BookNote{
		UserID: req.UserID,
		BookID: req.BookID,
		Notes:  req.Notes,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) ListByBook(ctx context.Context, bookID string) ([]models.BookNote, error) {
	return s.repo.GetByBook(ctx, bookID)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: note %s", ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
