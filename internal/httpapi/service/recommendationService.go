package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/cache"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/repository"
)

type RecommendationService interface {
	// Rebuild recomputes the user's recommendation list from their favorite
	// genres. No matching books is a not-found condition, matching the
	// upstream behavior.
	Rebuild(ctx context.Context, req dto.RebuildRecommendationRequest) (*models.Recommendation, error)
	Get(ctx context.Context, userID string) (*models.Recommendation, error)
}

type recommendationService struct {
	repo     repository.RecommendationRepository
	bookRepo repository.BookRepository
	cache    *cache.Cache
}

func NewRecommendationService(
	repo repository.RecommendationRepository,
	bookRepo repository.BookRepository,
	c *cache.Cache,
) RecommendationService {
	return &recommendationService{repo: repo, bookRepo: bookRepo, cache: c}
}

func recommendationCacheKey(userID string) string {
	return fmt.Sprintf("recommendations:user:%s", userID)
}

func (s *recommendationService) Rebuild(ctx context.Context, req dto.RebuildRecommendationRequest) (*models.Recommendation, error) {
	books, err := s.bookRepo.GetByGenres(ctx, req.FavoriteGenres)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("%w: no books for the selected genres", ErrNotFound)
	}

	bookIDs := make([]string, 0, len(books))
	for _, book := range books {
		bookIDs = append(bookIDs, book.ID)
	}

	rec := &models.Recommendation{
		UserID:             req.UserID,
		RecommendedBookIDs: bookIDs,
		Genres:             req.FavoriteGenres,
		LastUpdated:        time.Now(),
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, recommendationCacheKey(req.UserID))
	return rec, nil
}

func (s *recommendationService) Get(ctx context.Context, userID string) (*models.Recommendation, error) {
	var cached models.Recommendation
	if err := s.cache.Get(ctx, recommendationCacheKey(userID), &cached); err == nil {
		return &cached, nil
	}

	rec, err := s.repo.GetByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no recommendations for this user", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, recommendationCacheKey(userID), rec)
	return rec, nil
}
