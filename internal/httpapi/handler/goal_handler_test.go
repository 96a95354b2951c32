package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/service"
)

// MockGoalService mocks the GoalService interface
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) Create(ctx context.Context, req dto.CreateGoalRequest) (*models.ReadingGoal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingGoal), args.Error(1)
}

func (m *MockGoalService) Get(ctx context.Context, id string) (*models.ReadingGoal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingGoal), args.Error(1)
}

func (m *MockGoalService) GetAllByUser(ctx context.Context, userID string) ([]models.ReadingGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReadingGoal), args.Error(1)
}

func (m *MockGoalService) UpdateProgress(ctx context.Context, goalID string, upd dto.GoalUpdateRequest) (*models.ReadingGoal, error) {
	args := m.Called(ctx, goalID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingGoal), args.Error(1)
}

func (m *MockGoalService) Abandon(ctx context.Context, goalID string) (*models.ReadingGoal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingGoal), args.Error(1)
}

func (m *MockGoalService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGoalService) Statistics(ctx context.Context, userID string) (*dto.GoalStatsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GoalStatsResponse), args.Error(1)
}

func (m *MockGoalService) ExpireOverdue(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestCreateGoal_Success(t *testing.T) {
	mockService := new(MockGoalService)
	h := NewGoalHandler(mockService)
	router := setupRouter()
	router.POST("/goals", h.CreateGoal)

	goal := &models.ReadingGoal{
		ID:          "goal-1",
		UserID:      testUserID,
		Type:        models.GoalTypeBooks,
		TargetBooks: 3,
		Duration:    models.DurationMonthly,
		Status:      models.GoalStatusActive,
	}
	mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateGoalRequest")).Return(goal, nil)

	reqBody := dto.CreateGoalRequest{
		UserID:      testUserID,
		Type:        models.GoalTypeBooks,
		TargetBooks: 3,
		Duration:    models.DurationMonthly,
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/goals", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateGoal_UnknownDurationRejectedByBinding(t *testing.T) {
	mockService := new(MockGoalService)
	h := NewGoalHandler(mockService)
	router := setupRouter()
	router.POST("/goals", h.CreateGoal)

	body := []byte(`{"user_id":"` + testUserID + `","type":"books","target_books":3,"duration":"fortnightly"}`)

	req, _ := http.NewRequest("POST", "/goals", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestUpdateGoalProgress_TerminalConflict(t *testing.T) {
	mockService := new(MockGoalService)
	h := NewGoalHandler(mockService)
	router := setupRouter()
	router.PUT("/goals/:goal_id/progress", h.UpdateProgress)

	mockService.On("UpdateProgress", mock.Anything, "goal-1", mock.AnythingOfType("dto.GoalUpdateRequest")).
		Return(nil, service.ErrGoalTerminal)

	body, _ := json.Marshal(dto.GoalUpdateRequest{PagesRead: 10})

	req, _ := http.NewRequest("PUT", "/goals/goal-1/progress", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetGoal_NotFound(t *testing.T) {
	mockService := new(MockGoalService)
	h := NewGoalHandler(mockService)
	router := setupRouter()
	router.GET("/goals/:goal_id", h.GetGoal)

	mockService.On("Get", mock.Anything, "missing").Return(nil, service.ErrNotFound)

	req, _ := http.NewRequest("GET", "/goals/missing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStatistics(t *testing.T) {
	mockService := new(MockGoalService)
	h := NewGoalHandler(mockService)
	router := setupRouter()
	router.GET("/goals/user/:user_id/stats", h.GetStatistics)

	stats := &dto.GoalStatsResponse{
		TotalGoals:     4,
		ActiveGoals:    1,
		CompletedGoals: 2,
		FailedGoals:    1,
		CompletionRate: 50,
		CurrentStreak:  3,
	}
	mockService.On("Statistics", mock.Anything, testUserID).Return(stats, nil)

	req, _ := http.NewRequest("GET", "/goals/user/"+testUserID+"/stats", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data dto.GoalStatsResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 50, response.Data.CompletionRate)
	assert.Equal(t, 3, response.Data.CurrentStreak)
}
