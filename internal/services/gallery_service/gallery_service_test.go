package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"clubhub/internal/domain/models"
	"clubhub/internal/storage"
	"clubhub/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) List(ctx context.Context) ([]models.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) GetByID(ctx context.Context, id int64) (models.GalleryItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Update(ctx context.Context, id int64, upd models.GalleryItemUpdate) (models.GalleryItem, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestGalleryService_Create(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("new items start not featured", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("models.GalleryItem")).
			Return(models.GalleryItem{ID: 4, Title: strPtr("Summer camp"), IsFeatured: false}, nil)

		resp, err := service.Create(ctx, dto.CreateGalleryItemRequest{Title: strPtr("Summer camp")})

		require.NoError(t, err)
		assert.Equal(t, int64(4), resp.ID)
		assert.False(t, resp.IsFeatured)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		boom := errors.New("insert failed")
		mockRepo.On("Create", ctx, mock.AnythingOfType("models.GalleryItem")).
			Return(models.GalleryItem{}, boom)

		_, err := service.Create(ctx, dto.CreateGalleryItemRequest{})

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestGalleryService_List(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	mockRepo := new(MockGalleryRepository)
	service := NewGalleryService(log, mockRepo)

	mockRepo.On("List", ctx).Return([]models.GalleryItem{
		{ID: 1, Title: strPtr("first")},
		{ID: 2, Title: strPtr("second")},
	}, nil)

	resp, err := service.List(ctx)

	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Total)
}

func TestGalleryService_Update(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("propagates not found", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("Update", ctx, int64(8), mock.AnythingOfType("models.GalleryItemUpdate")).
			Return(models.GalleryItem{}, storage.ErrNotFound)

		_, err := service.Update(ctx, 8, dto.UpdateGalleryItemRequest{Title: strPtr("x")})

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
