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

// DashboardService aggregates analytics records into the dashboard views:
// overview numbers, a genre histogram, a weekday heatmap, and reading time
// over a trailing period. All of it is single-pass folds over the user's
// records.
type DashboardService interface {
	Record(ctx context.Context, req dto.RecordAnalyticsRequest) (*models.AnalyticsRecord, error)
	Overview(ctx context.Context, userID string) (*dto.DashboardOverviewResponse, error)
	GenreHistogram(ctx context.Context, userID string) (map[string]int, error)
	WeekdayHeatmap(ctx context.Context, userID string) ([]dto.WeekdayBucket, error)
	ReadingTimeByPeriod(ctx context.Context, userID, period string) (int, error)
}

type dashboardService struct {
	repo     repository.AnalyticsRepository
	bookRepo repository.BookRepository
	cache    *cache.Cache
}

func NewDashboardService(repo repository.AnalyticsRepository, bookRepo repository.BookRepository, c *cache.Cache) DashboardService {
	return &dashboardService{repo: repo, bookRepo: bookRepo, cache: c}
}

func overviewCacheKey(userID string) string {
	return fmt.Sprintf("dashboard:user:%s", userID)
}

func (s *dashboardService) Record(ctx context.Context, req dto.RecordAnalyticsRequest) (*models.AnalyticsRecord, error) {
	book, err := s.bookRepo.GetByID(ctx, req.BookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: book %s", ErrNotFound, req.BookID)
	}
	if err != nil {
		return nil, err
	}

	record := &models.AnalyticsRecord{
		UserID:      req.UserID,
		BookID:      req.BookID,
		ReadingTime: req.ReadingTime,
		Genre:       book.Genre,
		Author:      book.Author,
		Completed:   req.Completed,
		Date:        time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, overviewCacheKey(req.UserID))
	return record, nil
}

func (s *dashboardService) Overview(ctx context.Context, userID string) (*dto.DashboardOverviewResponse, error) {
	var cached dto.DashboardOverviewResponse
	if err := s.cache.Get(ctx, overviewCacheKey(userID), &cached); err == nil {
		return &cached, nil
	}

	records, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &dto.DashboardOverviewResponse{}
	for _, record := range records {
		overview.ReadingTime += record.ReadingTime
		if record.Completed {
			overview.BooksRead++
		}
	}
	if overview.BooksRead > 0 {
		overview.AvgReadingSpeed = float64(overview.ReadingTime) / float64(overview.BooksRead)
	}

	_ = s.cache.Set(ctx, overviewCacheKey(userID), overview)
	return overview, nil
}

func (s *dashboardService) GenreHistogram(ctx context.Context, userID string) (map[string]int, error) {
	records, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	histogram := make(map[string]int)
	for _, record := range records {
		if record.Genre != "" {
			histogram[record.Genre]++
		}
	}
	return histogram, nil
}

func (s *dashboardService) WeekdayHeatmap(ctx context.Context, userID string) ([]dto.WeekdayBucket, error) {
	records, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	minutes := make([]int, 7)
	for _, record := range records {
		minutes[int(record.Date.Weekday())] += record.ReadingTime
	}

	buckets := make([]dto.WeekdayBucket, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		buckets[day] = dto.WeekdayBucket{
			Weekday: day.String(),
			Minutes: minutes[day],
		}
	}
	return buckets, nil
}

func (s *dashboardService) ReadingTimeByPeriod(ctx context.Context, userID, period string) (int, error) {
	now := time.Now()
	var since time.Time
	switch period {
	case "day":
		since = now.AddDate(0, 0, -1)
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, -1, 0)
	case "year":
		since = now.AddDate(-1, 0, 0)
	default:
		return 0, fmt.Errorf("%w: unknown period %q", ErrValidation, period)
	}

	records, err := s.repo.GetByUserSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, record := range records {
		total += record.ReadingTime
	}
	return total, nil
}
