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

// MockRecommendationRepository mocks the RecommendationRepository interface
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) GetByUser(ctx context.Context, userID string) (*models.Recommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Upsert(ctx context.Context, rec *models.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func TestRebuildRecommendations(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	mockBookRepo := new(MockBookRepository)
	svc := NewRecommendationService(mockRepo, mockBookRepo, nil)

	genres := []string{"fantasy", "science fiction"}
	books := []models.Book{
		{ID: "book-a", Genre: "fantasy"},
		{ID: "book-b", Genre: "science fiction"},
	}
	mockBookRepo.On("GetByGenres", mock.Anything, genres).Return(books, nil)
	mockRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Recommendation")).Return(nil)

	rec, err := svc.Rebuild(context.Background(), dto.RebuildRecommendationRequest{
		UserID:         testUserID,
		FavoriteGenres: genres,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"book-a", "book-b"}, rec.RecommendedBookIDs)
	assert.Equal(t, genres, rec.Genres)
	mockRepo.AssertExpectations(t)
}

func TestRebuildRecommendations_NoMatches(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	mockBookRepo := new(MockBookRepository)
	svc := NewRecommendationService(mockRepo, mockBookRepo, nil)

	mockBookRepo.On("GetByGenres", mock.Anything, []string{"poetry"}).Return([]models.Book{}, nil)

	_, err := svc.Rebuild(context.Background(), dto.RebuildRecommendationRequest{
		UserID:         testUserID,
		FavoriteGenres: []string{"poetry"},
	})

	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Upsert")
}

func TestGetRecommendations_Missing(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	svc := NewRecommendationService(mockRepo, new(MockBookRepository), nil)

	mockRepo.On("GetByUser", mock.Anything, testUserID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrNotFound)
}
