package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/dto"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/models"
)

// MockSettingsRepository mocks the SettingsRepository interface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetByUser(ctx context.Context, userID string) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *models.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func TestUpdateTheme_CreatesOnFirstUpdate(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	svc := NewSettingsService(mockRepo)

	mockRepo.On("GetByUser", mock.Anything, testUserID).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.UserSettings")).Return(nil)

	settings, err := svc.UpdateTheme(context.Background(), dto.UpdateThemeRequest{
		UserID: testUserID,
		Theme:  "dark",
	})

	assert.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, models.DefaultBackground, settings.Background)
	mockRepo.AssertExpectations(t)
}

func TestUpdateTheme_OmittedFieldsKeepValues(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	svc := NewSettingsService(mockRepo)

	existing := &models.UserSettings{
		ID:         "settings-1",
		UserID:     testUserID,
		Theme:      "dark",
		Background: "#101010",
		TextColor:  "#eeeeee",
		Accent:     "#ff4081",
	}
	mockRepo.On("GetByUser", mock.Anything, testUserID).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, existing).Return(nil)

	settings, err := svc.UpdateTheme(context.Background(), dto.UpdateThemeRequest{
		UserID:       testUserID,
		CustomColors: &dto.CustomColors{Accent: "#00bcd4"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "#101010", settings.Background)
	assert.Equal(t, "#00bcd4", settings.Accent)
}

func TestResetTheme(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	svc := NewSettingsService(mockRepo)

	existing := &models.UserSettings{
		ID:         "settings-1",
		UserID:     testUserID,
		Theme:      "dark",
		Background: "#101010",
		TextColor:  "#eeeeee",
		Accent:     "#ff4081",
	}
	mockRepo.On("GetByUser", mock.Anything, testUserID).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, existing).Return(nil)

	settings, err := svc.ResetTheme(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, models.DefaultBackground, settings.Background)
	assert.Equal(t, models.DefaultText, settings.TextColor)
	assert.Equal(t, models.DefaultAccent, settings.Accent)
}

func TestResetTheme_MissingSettings(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	svc := NewSettingsService(mockRepo)

	mockRepo.On("GetByUser", mock.Anything, testUserID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResetTheme(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrNotFound)
}
