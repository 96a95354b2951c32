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

type SettingsService interface {
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateTheme(ctx context.Context, req dto.UpdateThemeRequest) (*models.UserSettings, error)
	ResetTheme(ctx context.Context, userID string) (*models.UserSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.repo.GetByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user settings", ErrNotFound)
	}
	return settings, err
}

// UpdateTheme patches the stored theme; omitted fields keep their value.
// A user without a settings record gets one created on first update.
func (s *settingsService) UpdateTheme(ctx context.Context, req dto.UpdateThemeRequest) (*models.UserSettings, error) {
	settings, err := s.repo.GetByUser(ctx, req.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = &models.UserSettings{
			UserID:     req.UserID,
			Theme:      "light",
			Background: models.DefaultBackground,
			TextColor:  models.DefaultText,
			Accent:     models.DefaultAccent,
		}
	} else if err != nil {
		return nil, err
	}

	if req.Theme != "" {
		settings.Theme = req.Theme
	}
	if req.CustomColors != nil {
		if req.CustomColors.Background != "" {
			settings.Background = req.CustomColors.Background
		}
		if req.CustomColors.Text != "" {
			settings.TextColor = req.CustomColors.Text
		}
		if req.CustomColors.Accent != "" {
			settings.Accent = req.CustomColors.Accent
		}
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) ResetTheme(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.repo.GetByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user settings", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	settings.Theme = "light"
	settings.Background = models.DefaultBackground
	settings.TextColor = models.DefaultText
	settings.Accent = models.DefaultAccent

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
