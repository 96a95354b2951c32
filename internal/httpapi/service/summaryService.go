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

type SummaryService interface {
	Create(ctx context.Context, req dto.CreateSummaryRequest) (*models.Summary, error)
	Get(ctx context.Context, id string) (*models.Summary, error)
	ListByUser(ctx context.Context, userID string) ([]models.Summary, error)
	Update(ctx context.Context, id string, req dto.UpdateSummaryRequest) (*models.Summary, error)
	Delete(ctx context.Context, id string) error
}

type summaryService struct {
	repo     repository.SummaryRepository
	bookRepo repository.BookRepository
}

func NewSummaryService(repo repository.SummaryRepository, bookRepo repository.BookRepository) SummaryService {
	return &summaryService{repo: repo, bookRepo: bookRepo}
}

func (s *summaryService) Create(ctx context.Context, req dto.CreateSummaryRequest) (*models.Summary, error) {
	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %s", ErrNotFound, req.BookID)
		}
		return nil, err
	}

	summary := &models.Summary{
		UserID:  req.UserID,
		BookID:  req.BookID,
		Content: req.Content,
	}
	if err := s.repo.Create(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *summaryService) Get(ctx context.Context, id string) (*models.Summary, error) {
	summary, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: summary %s", ErrNotFound, id)
	}
	return summary, err
}

func (s *summaryService) ListByUser(ctx context.Context, userID string) ([]models.Summary, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *summaryService) Update(ctx context.Context, id string, req dto.UpdateSummaryRequest) (*models.Summary, error) {
	summary, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: summary %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	summary.Content = req.Content
	if err := s.repo.Update(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *summaryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: summary %s", ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
