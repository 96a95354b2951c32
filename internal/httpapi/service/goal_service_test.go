package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/repository"
)

// MockGoalRepository mocks the GoalRepository interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *models.ReadingGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id string) (*models.ReadingGoal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingGoal), args.Error(1)
}

func (m *MockGoalRepository) GetAllByUser(ctx context.Context, userID string) ([]models.ReadingGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReadingGoal), args.Error(1)
}

func (m *MockGoalRepository) GetOverdueActive(ctx context.Context, now time.Time) ([]models.ReadingGoal, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReadingGoal), args.Error(1)
}

func (m *MockGoalRepository) Save(ctx context.Context, goal *models.ReadingGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotificationRepository mocks the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetUnreadByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newGoalService(goalRepo *MockGoalRepository, bookRepo *MockBookRepository, notifRepo *MockNotificationRepository) GoalService {
	return NewGoalService(goalRepo, bookRepo, notifRepo)
}

func activeBooksGoal(target int) *models.ReadingGoal {
	start := time.Now().AddDate(0, 0, -3)
	return &models.ReadingGoal{
		ID:             "goal-1",
		UserID:         testUserID,
		Type:           models.GoalTypeBooks,
		TargetBooks:    target,
		Duration:       models.DurationMonthly,
		StartDate:      start,
		EndDate:        start.AddDate(0, 1, 0),
		Status:         models.GoalStatusActive,
		CompletedBooks: []string{},
	}
}

func TestCreateGoal_DerivesEndDateFromDuration(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ReadingGoal")).Return(nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	goal, err := svc.Create(context.Background(), dto.CreateGoalRequest{
		UserID:      testUserID,
		Type:        models.GoalTypeBooks,
		TargetBooks: 3,
		Duration:    models.DurationMonthly,
		StartDate:   &start,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.GoalStatusActive, goal.Status)
	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), goal.EndDate)
	assert.Empty(t, goal.CompletedBooks)
	mockRepo.AssertExpectations(t)
}

func TestCreateGoal_TargetMustMatchType(t *testing.T) {
	svc := newGoalService(new(MockGoalRepository), new(MockBookRepository), new(MockNotificationRepository))

	_, err := svc.Create(context.Background(), dto.CreateGoalRequest{
		UserID:      testUserID,
		Type:        models.GoalTypePages,
		TargetBooks: 5, // wrong field for a pages goal
		Duration:    models.DurationWeekly,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateGoal_CustomDurationNeedsEndDate(t *testing.T) {
	svc := newGoalService(new(MockGoalRepository), new(MockBookRepository), new(MockNotificationRepository))

	_, err := svc.Create(context.Background(), dto.CreateGoalRequest{
		UserID:      testUserID,
		Type:        models.GoalTypeBooks,
		TargetBooks: 2,
		Duration:    models.DurationCustom,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProgress_BooksGoalToCompletion(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	mockBookRepo := new(MockBookRepository)
	mockNotifRepo := new(MockNotificationRepository)
	svc := newGoalService(mockRepo, mockBookRepo, mockNotifRepo)

	goal := activeBooksGoal(3)
	mockRepo.On("GetByID", mock.Anything, "goal-1").Return(goal, nil)
	mockRepo.On("Save", mock.Anything, goal).Return(nil)
	mockBookRepo.On("GetByID", mock.Anything, mock.AnythingOfType("string")).Return(newTestBook(), nil)
	mockNotifRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).Return(nil)

	// First book: a third of the way there.
	updated, err := svc.UpdateProgress(context.Background(), "goal-1", dto.GoalUpdateRequest{
		BookID: "book-a", Completed: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.Progress)
	assert.InDelta(t, 33.33, updated.ProgressPercentage, 0.01)
	assert.Equal(t, models.GoalStatusActive, updated.Status)

	// Same book again: no double counting.
	updated, err = svc.UpdateProgress(context.Background(), "goal-1", dto.GoalUpdateRequest{
		BookID: "book-a", Completed: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.Progress)

	// Two more distinct books complete the goal.
	_, err = svc.UpdateProgress(context.Background(), "goal-1", dto.GoalUpdateRequest{
		BookID: "book-b", Completed: true,
	})
	assert.NoError(t, err)

	updated, err = svc.UpdateProgress(context.Background(), "goal-1", dto.GoalUpdateRequest{
		BookID: "book-c", Completed: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.Progress)
	assert.Equal(t, 100.0, updated.ProgressPercentage)
	assert.Equal(t, models.GoalStatusCompleted, updated.Status)
	mockNotifRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestUpdateProgress_PercentageCapsAtHundred(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	mockNotifRepo := new(MockNotificationRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), mockNotifRepo)
	mockNotifRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).Return(nil)

	start := time.Now().AddDate(0, 0, -1)
	goal := &models.ReadingGoal{
		ID:          "goal-2",
		UserID:      testUserID,
		Type:        models.GoalTypePages,
		TargetPages: 100,
		Duration:    models.DurationWeekly,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Progress:    90,
		Status:      models.GoalStatusActive,
	}
	mockRepo.On("GetByID", mock.Anything, "goal-2").Return(goal, nil)
	mockRepo.On("Save", mock.Anything, goal).Return(nil)

	updated, err := svc.UpdateProgress(context.Background(), "goal-2", dto.GoalUpdateRequest{PagesRead: 50})

	assert.NoError(t, err)
	assert.Equal(t, 140, updated.Progress)
	assert.Equal(t, 100.0, updated.ProgressPercentage)
	assert.Equal(t, models.GoalStatusCompleted, updated.Status)
}

func TestUpdateProgress_ExpiredWindowFailsGoal(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	start := time.Now().AddDate(0, 0, -14)
	goal := &models.ReadingGoal{
		ID:            "goal-3",
		UserID:        testUserID,
		Type:          models.GoalTypeTime,
		TargetMinutes: 600,
		Duration:      models.DurationWeekly,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 7),
		Progress:      100,
		Status:        models.GoalStatusActive,
	}
	mockRepo.On("GetByID", mock.Anything, "goal-3").Return(goal, nil)
	mockRepo.On("Save", mock.Anything, goal).Return(nil)

	updated, err := svc.UpdateProgress(context.Background(), "goal-3", dto.GoalUpdateRequest{MinutesRead: 30})

	assert.NoError(t, err)
	assert.Equal(t, models.GoalStatusFailed, updated.Status)
}

func TestUpdateProgress_TerminalGoalRejected(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	goal := activeBooksGoal(3)
	goal.Status = models.GoalStatusAbandoned
	mockRepo.On("GetByID", mock.Anything, "goal-1").Return(goal, nil)

	_, err := svc.UpdateProgress(context.Background(), "goal-1", dto.GoalUpdateRequest{
		BookID: "book-a", Completed: true,
	})

	assert.ErrorIs(t, err, ErrGoalTerminal)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestUpdateProgress_GoalMissing(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	mockRepo.On("GetByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateProgress(context.Background(), "nope", dto.GoalUpdateRequest{PagesRead: 1})

	assert.ErrorIs(t, err, ErrNotFound)
}

func dailyGoal(lastUpdated time.Time, streak int) *models.ReadingGoal {
	start := time.Now().AddDate(0, 0, -30)
	return &models.ReadingGoal{
		ID:          "daily-1",
		UserID:      testUserID,
		Type:        models.GoalTypePages,
		TargetPages: 1000,
		Duration:    models.DurationDaily,
		StartDate:   start,
		EndDate:     time.Now().AddDate(0, 0, 1),
		Status:      models.GoalStatusActive,
		LastUpdated: lastUpdated,
		StreakDays:  streak,
	}
}

func TestStreak_ConsecutiveDayIncrements(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	goal := dailyGoal(time.Now().AddDate(0, 0, -1), 4)
	mockRepo.On("GetByID", mock.Anything, "daily-1").Return(goal, nil)
	mockRepo.On("Save", mock.Anything, goal).Return(nil)

	updated, err := svc.UpdateProgress(context.Background(), "daily-1", dto.GoalUpdateRequest{PagesRead: 10})

	assert.NoError(t, err)
	assert.Equal(t, 5, updated.StreakDays)
}

func TestStreak_SameDayUnchanged(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	goal := dailyGoal(time.Now(), 4)
	mockRepo.On("GetByID", mock.Anything, "daily-1").Return(goal, nil)
	mockRepo.On("Save", mock.Anything, goal).Return(nil)

	updated, err := svc.UpdateProgress(context.Background(), "daily-1", dto.GoalUpdateRequest{PagesRead: 10})

	assert.NoError(t, err)
	assert.Equal(t, 4, updated.StreakDays)
}

func TestStreak_GapResetsToOne(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	goal := dailyGoal(time.Now().AddDate(0, 0, -3), 9)
	mockRepo.On("GetByID", mock.Anything, "daily-1").Return(goal, nil)
	mockRepo.On("Save", mock.Anything, goal).Return(nil)

	updated, err := svc.UpdateProgress(context.Background(), "daily-1", dto.GoalUpdateRequest{PagesRead: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, updated.StreakDays)
}

func TestAbandonGoal(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	goal := activeBooksGoal(3)
	mockRepo.On("GetByID", mock.Anything, "goal-1").Return(goal, nil)
	mockRepo.On("Save", mock.Anything, goal).Return(nil)

	updated, err := svc.Abandon(context.Background(), "goal-1")

	assert.NoError(t, err)
	assert.Equal(t, models.GoalStatusAbandoned, updated.Status)

	// Already terminal, a second abandon is rejected.
	_, err = svc.Abandon(context.Background(), "goal-1")
	assert.ErrorIs(t, err, ErrGoalTerminal)
}

func TestStatistics_Aggregates(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	goals := []models.ReadingGoal{
		{Status: models.GoalStatusActive, Duration: models.DurationDaily, StreakDays: 6},
		{Status: models.GoalStatusActive, Duration: models.DurationDaily, StreakDays: 2},
		{Status: models.GoalStatusCompleted},
		{Status: models.GoalStatusCompleted},
		{Status: models.GoalStatusFailed},
		{Status: models.GoalStatusAbandoned},
	}
	mockRepo.On("GetAllByUser", mock.Anything, testUserID).Return(goals, nil)

	stats, err := svc.Statistics(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Equal(t, 6, stats.TotalGoals)
	assert.Equal(t, 2, stats.ActiveGoals)
	assert.Equal(t, 2, stats.CompletedGoals)
	assert.Equal(t, 1, stats.FailedGoals)
	assert.Equal(t, 1, stats.AbandonedGoals)
	assert.Equal(t, 33, stats.CompletionRate)
	assert.Equal(t, 6, stats.CurrentStreak)
}

func TestStatistics_NoGoals(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	mockRepo.On("GetAllByUser", mock.Anything, testUserID).Return([]models.ReadingGoal{}, nil)

	stats, err := svc.Statistics(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalGoals)
	assert.Equal(t, 0, stats.CompletionRate)
}

func TestExpireOverdue_ResolvesByPercentage(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	overdue := []models.ReadingGoal{
		{ID: "g1", Status: models.GoalStatusActive, ProgressPercentage: 100},
		{ID: "g2", Status: models.GoalStatusActive, ProgressPercentage: 40},
	}
	mockRepo.On("GetOverdueActive", mock.Anything, mock.AnythingOfType("time.Time")).Return(overdue, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.ReadingGoal")).Return(nil)

	resolved, err := svc.ExpireOverdue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, resolved)
	assert.Equal(t, models.GoalStatusCompleted, overdue[0].Status)
	assert.Equal(t, models.GoalStatusFailed, overdue[1].Status)
}

func TestExpireOverdue_SkipsStaleRecords(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	svc := newGoalService(mockRepo, new(MockBookRepository), new(MockNotificationRepository))

	overdue := []models.ReadingGoal{
		{ID: "g1", Status: models.GoalStatusActive, ProgressPercentage: 10},
	}
	mockRepo.On("GetOverdueActive", mock.Anything, mock.AnythingOfType("time.Time")).Return(overdue, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.ReadingGoal")).Return(repository.ErrStaleRecord)

	resolved, err := svc.ExpireOverdue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, resolved)
}
