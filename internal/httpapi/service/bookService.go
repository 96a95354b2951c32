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

type BookService interface {
	Create(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
	Update(ctx context.Context, id string, req dto.UpdateBookRequest) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error) {
	book := &models.Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		TotalPages:    req.TotalPages,
		Description:   req.Description,
		CoverURL:      req.CoverURL,
		PublishedYear: req.PublishedYear,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Get(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: book %s", ErrNotFound, id)
	}
	return book, err
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) Update(ctx context.Context, id string, req dto.UpdateBookRequest) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: book %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		book.Title = req.Title
	}
	if req.Author != "" {
		book.Author = req.Author
	}
	if req.Genre != "" {
		book.Genre = req.Genre
	}
	if req.TotalPages > 0 {
		book.TotalPages = req.TotalPages
	}
	if req.Description != "" {
		book.Description = req.Description
	}
	if req.CoverURL != "" {
		book.CoverURL = req.CoverURL
	}
	if req.PublishedYear != 0 {
		book.PublishedYear = req.PublishedYear
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: book %s", ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
