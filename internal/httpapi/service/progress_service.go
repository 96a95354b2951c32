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

type ProgressService interface {
	// RecordSession logs one reading session and recomputes the derived
	// metrics. req.PagesRead is the cumulative pages-read-so-far for the
	// book, not an increment.
	RecordSession(ctx context.Context, req dto.TrackProgressRequest) (*models.ReadingProgress, error)
	Get(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error)
	GetAllByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error)
	Abandon(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error)
	UserStats(ctx context.Context, userID string) (*dto.ReadingStatsResponse, error)
}

type progressService struct {
	repo     repository.ProgressRepository
	bookRepo repository.BookRepository
	cache    *cache.Cache
}

func NewProgressService(repo repository.ProgressRepository, bookRepo repository.BookRepository, c *cache.Cache) ProgressService {
	return &progressService{
		repo:     repo,
		bookRepo: bookRepo,
		cache:    c,
	}
}

func statsCacheKey(userID string) string {
	return fmt.Sprintf("stats:user:%s", userID)
}

func (s *progressService) RecordSession(ctx context.Context, req dto.TrackProgressRequest) (*models.ReadingProgress, error) {
	if req.TotalPages < 1 {
		return nil, fmt.Errorf("%w: total_pages must be at least 1", ErrValidation)
	}
	if req.PagesRead < 0 || req.TimeSpent < 0 {
		return nil, fmt.Errorf("%w: pages_read and time_spent must not be negative", ErrValidation)
	}

	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %s", ErrNotFound, req.BookID)
		}
		return nil, err
	}

	now := time.Now()

	progress, err := s.repo.GetByUserAndBook(ctx, req.UserID, req.BookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = &models.ReadingProgress{
			UserID:     req.UserID,
			BookID:     req.BookID,
			TotalPages: req.TotalPages,
			StartDate:  now,
			Status:     models.StatusNotStarted,
		}
		if err := s.repo.Create(ctx, progress); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// This session's speed: pages per hour, zero when nothing meaningful
	// was measured.
	var sessionSpeed float64
	if req.PagesRead > 0 && req.TimeSpent > 0 {
		sessionSpeed = float64(req.PagesRead) / (float64(req.TimeSpent) / 60)
	}

	session := &models.ReadingSession{
		Date:         now,
		PagesRead:    req.PagesRead,
		TimeSpent:    req.TimeSpent,
		ReadingSpeed: sessionSpeed,
	}

	// Cumulative input, silently clamped to the book length.
	progress.PagesRead = req.PagesRead
	if progress.PagesRead > progress.TotalPages {
		progress.PagesRead = progress.TotalPages
	}
	progress.CompletionPercentage = float64(progress.PagesRead) / float64(progress.TotalPages) * 100
	progress.LastReadDate = now

	// Average speed aggregates over the whole session log, not just this
	// session.
	totalTime := session.TimeSpent
	totalPagesLogged := session.PagesRead
	for _, logged := range progress.Sessions {
		totalTime += logged.TimeSpent
		totalPagesLogged += logged.PagesRead
	}
	if totalTime > 0 {
		progress.AvgReadingSpeed = float64(totalPagesLogged) / (float64(totalTime) / 60)
	} else {
		progress.AvgReadingSpeed = 0
	}

	pagesRemaining := progress.TotalPages - progress.PagesRead
	if progress.AvgReadingSpeed > 0 {
		progress.EstimatedTimeToComplete = float64(pagesRemaining) / progress.AvgReadingSpeed
	} else {
		progress.EstimatedTimeToComplete = 0
	}

	progress.RecalculateStatus()

	if err := s.repo.Save(ctx, progress, session); err != nil {
		return nil, err
	}
	progress.Sessions = append(progress.Sessions, *session)

	// Stats for this user are stale now.
	_ = s.cache.Invalidate(ctx, statsCacheKey(req.UserID))

	return progress, nil
}

func (s *progressService) Get(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error) {
	progress, err := s.repo.GetByUserAndBook(ctx, userID, bookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: reading progress", ErrNotFound)
	}
	return progress, err
}

func (s *progressService) GetAllByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error) {
	return s.repo.GetAllByUser(ctx, userID)
}

// Abandon marks the book abandoned. This is the only path that produces the
// abandoned status; the derivation in RecalculateStatus preserves it until
// completion reaches 100.
func (s *progressService) Abandon(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error) {
	progress, err := s.repo.GetByUserAndBook(ctx, userID, bookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: reading progress", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	progress.Status = models.StatusAbandoned
	progress.RecalculateStatus()

	if err := s.repo.Save(ctx, progress, nil); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, statsCacheKey(userID))
	return progress, nil
}

// UserStats folds over every progress record of the user. A user with no
// records gets a zeroed aggregate, not an error.
func (s *progressService) UserStats(ctx context.Context, userID string) (*dto.ReadingStatsResponse, error) {
	var cached dto.ReadingStatsResponse
	if err := s.cache.Get(ctx, statsCacheKey(userID), &cached); err == nil {
		return &cached, nil
	}

	records, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	oneWeekAgo := time.Now().AddDate(0, 0, -7)

	stats := &dto.ReadingStatsResponse{TotalBooks: len(records)}
	totalPagesLogged := 0
	for _, record := range records {
		for _, session := range record.Sessions {
			stats.TotalReadingTime += session.TimeSpent
			totalPagesLogged += session.PagesRead
			if session.Date.After(oneWeekAgo) {
				stats.PagesLastWeek += session.PagesRead
			}
		}
		switch {
		case record.CompletionPercentage >= 100:
			stats.CompletedBooks++
		case record.CompletionPercentage > 0:
			stats.InProgressBooks++
		}
	}
	if stats.TotalReadingTime > 0 {
		stats.AvgReadingSpeed = float64(totalPagesLogged) / (float64(stats.TotalReadingTime) / 60)
	}

	_ = s.cache.Set(ctx, statsCacheKey(userID), stats)
	return stats, nil
}
