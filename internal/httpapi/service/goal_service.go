package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/repository"
)

// GoalService drives the reading-goal state machine: active goals advance
// through progress updates and end up completed, failed, or abandoned.
// Terminal goals accept no further mutation.
type GoalService interface {
	Create(ctx context.Context, req dto.CreateGoalRequest) (*models.ReadingGoal, error)
	Get(ctx context.Context, id string) (*models.ReadingGoal, error)
	GetAllByUser(ctx context.Context, userID string) ([]models.ReadingGoal, error)
	UpdateProgress(ctx context.Context, goalID string, upd dto.GoalUpdateRequest) (*models.ReadingGoal, error)
	Abandon(ctx context.Context, goalID string) (*models.ReadingGoal, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context, userID string) (*dto.GoalStatsResponse, error)
	// ExpireOverdue resolves every active goal whose window has closed and
	// returns how many were touched. Run periodically from the server.
	ExpireOverdue(ctx context.Context) (int, error)
}

type goalService struct {
	repo             repository.GoalRepository
	bookRepo         repository.BookRepository
	notificationRepo repository.NotificationRepository
}

func NewGoalService(
	repo repository.GoalRepository,
	bookRepo repository.BookRepository,
	notificationRepo repository.NotificationRepository,
) GoalService {
	return &goalService{
		repo:             repo,
		bookRepo:         bookRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *goalService) Create(ctx context.Context, req dto.CreateGoalRequest) (*models.ReadingGoal, error) {
	// Exactly the target field matching the type has to be supplied.
	switch req.Type {
	case models.GoalTypeBooks:
		if req.TargetBooks < 1 {
			return nil, fmt.Errorf("%w: target_books is required for a books goal", ErrValidation)
		}
	case models.GoalTypePages:
		if req.TargetPages < 1 {
			return nil, fmt.Errorf("%w: target_pages is required for a pages goal", ErrValidation)
		}
	case models.GoalTypeTime:
		if req.TargetMinutes < 1 {
			return nil, fmt.Errorf("%w: target_minutes is required for a time goal", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrValidation, req.Type)
	}

	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}

	var end time.Time
	switch req.Duration {
	case models.DurationDaily:
		end = start.AddDate(0, 0, 1)
	case models.DurationWeekly:
		end = start.AddDate(0, 0, 7)
	case models.DurationMonthly:
		end = start.AddDate(0, 1, 0)
	case models.DurationYearly:
		end = start.AddDate(1, 0, 0)
	case models.DurationCustom:
		if req.EndDate == nil {
			return nil, fmt.Errorf("%w: end_date is required for a custom duration", ErrValidation)
		}
		end = *req.EndDate
	default:
		return nil, fmt.Errorf("%w: unknown duration %q", ErrValidation, req.Duration)
	}

	goal := &models.ReadingGoal{
		UserID:         req.UserID,
		Type:           req.Type,
		TargetBooks:    req.TargetBooks,
		TargetPages:    req.TargetPages,
		TargetMinutes:  req.TargetMinutes,
		Duration:       req.Duration,
		StartDate:      start,
		EndDate:        end,
		Status:         models.GoalStatusActive,
		CompletedBooks: []string{},
	}
	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) Get(ctx context.Context, id string) (*models.ReadingGoal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: reading goal %s", ErrNotFound, id)
	}
	return goal, err
}

func (s *goalService) GetAllByUser(ctx context.Context, userID string) ([]models.ReadingGoal, error) {
	return s.repo.GetAllByUser(ctx, userID)
}

func (s *goalService) UpdateProgress(ctx context.Context, goalID string, upd dto.GoalUpdateRequest) (*models.ReadingGoal, error) {
	goal, err := s.repo.GetByID(ctx, goalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: reading goal %s", ErrNotFound, goalID)
	}
	if err != nil {
		return nil, err
	}
	if goal.IsTerminal() {
		return nil, ErrGoalTerminal
	}

	switch goal.Type {
	case models.GoalTypeBooks:
		if upd.Completed && upd.BookID != "" {
			if _, err := s.bookRepo.GetByID(ctx, upd.BookID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("%w: book %s", ErrNotFound, upd.BookID)
				}
				return nil, err
			}
			// A book only counts once.
			if !goal.HasCompletedBook(upd.BookID) {
				goal.CompletedBooks = append(goal.CompletedBooks, upd.BookID)
				goal.Progress++
			}
		}
	case models.GoalTypePages:
		goal.Progress += upd.PagesRead
	case models.GoalTypeTime:
		goal.Progress += upd.MinutesRead
	}

	// Capped at 100; a zero target cannot divide.
	if target := goal.Target(); target > 0 {
		goal.ProgressPercentage = math.Min(float64(goal.Progress)/float64(target)*100, 100)
	} else {
		goal.ProgressPercentage = 0
	}

	now := time.Now()
	s.advanceStreak(goal, now)

	// Lifecycle: completion wins; an already-expired window fails the goal.
	if goal.ProgressPercentage >= 100 {
		goal.Status = models.GoalStatusCompleted
		s.notifyGoalCompleted(ctx, goal)
	} else if now.After(goal.EndDate) {
		goal.Status = models.GoalStatusFailed
	}

	goal.LastUpdated = now
	if err := s.repo.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// advanceStreak maintains the consecutive-day counter for daily goals.
// Updates on the same calendar day don't double-count; a gap restarts at 1.
func (s *goalService) advanceStreak(goal *models.ReadingGoal, now time.Time) {
	if goal.Duration != models.DurationDaily {
		return
	}
	today := dateFloor(now)
	yesterday := today.AddDate(0, 0, -1)
	lastUpdateDay := dateFloor(goal.LastUpdated)

	switch {
	case lastUpdateDay.Equal(yesterday):
		goal.StreakDays++
	case !lastUpdateDay.Equal(today):
		goal.StreakDays = 1
	}
}

func dateFloor(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// notifyGoalCompleted records the achievement. Best effort: a failed insert
// must not undo the goal update.
func (s *goalService) notifyGoalCompleted(ctx context.Context, goal *models.ReadingGoal) {
	_ = s.notificationRepo.Create(ctx, &models.Notification{
		UserID:   goal.UserID,
		Title:    "Reading goal completed",
		Message:  fmt.Sprintf("You reached your %s reading goal. Congratulations!", goal.Duration),
		Type:     models.NotificationAchievement,
		RefID:    goal.ID,
		RefType:  "reading_goal",
		Priority: "normal",
	})
}

func (s *goalService) Abandon(ctx context.Context, goalID string) (*models.ReadingGoal, error) {
	goal, err := s.repo.GetByID(ctx, goalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: reading goal %s", ErrNotFound, goalID)
	}
	if err != nil {
		return nil, err
	}
	if goal.IsTerminal() {
		return nil, ErrGoalTerminal
	}

	goal.Status = models.GoalStatusAbandoned
	goal.LastUpdated = time.Now()
	if err := s.repo.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: reading goal %s", ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *goalService) Statistics(ctx context.Context, userID string) (*dto.GoalStatsResponse, error) {
	goals, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &dto.GoalStatsResponse{TotalGoals: len(goals)}
	for _, goal := range goals {
		switch goal.Status {
		case models.GoalStatusActive:
			stats.ActiveGoals++
			if goal.Duration == models.DurationDaily && goal.StreakDays > stats.CurrentStreak {
				stats.CurrentStreak = goal.StreakDays
			}
		case models.GoalStatusCompleted:
			stats.CompletedGoals++
		case models.GoalStatusFailed:
			stats.FailedGoals++
		case models.GoalStatusAbandoned:
			stats.AbandonedGoals++
		}
	}
	// Guard the zero-goal division.
	if stats.TotalGoals > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedGoals) / float64(stats.TotalGoals) * 100))
	}
	return stats, nil
}

func (s *goalService) ExpireOverdue(ctx context.Context) (int, error) {
	now := time.Now()
	overdue, err := s.repo.GetOverdueActive(ctx, now)
	if err != nil {
		return 0, err
	}

	resolved := 0
	for i := range overdue {
		goal := &overdue[i]
		if goal.ProgressPercentage >= 100 {
			goal.Status = models.GoalStatusCompleted
		} else {
			goal.Status = models.GoalStatusFailed
		}
		goal.LastUpdated = now
		// A concurrent update already resolved this goal; skip it.
		if err := s.repo.Save(ctx, goal); err != nil {
			if errors.Is(err, repository.ErrStaleRecord) {
				continue
			}
			return resolved, err
		}
		resolved++
	}
	return resolved, nil
}
