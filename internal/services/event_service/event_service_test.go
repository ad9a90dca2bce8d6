package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"clubhub/internal/domain/models"
	"clubhub/internal/storage"
	"clubhub/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event models.Event) (models.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (models.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, id int64, upd models.EventUpdate) (models.Event, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("maps the stored row into the response", func(t *testing.T) {
		mockRepo := new(MockEventRepository)
		service := NewEventService(log, mockRepo)

		imageID := int64(3)
		stored := models.Event{
			ID:          10,
			Title:       "Open Day",
			EventDate:   strPtr("2026-09-12"),
			ImageID:     &imageID,
			IsPublished: false,
			CreatedAt:   time.Now(),
		}
		mockRepo.On("Create", ctx, mock.AnythingOfType("models.Event")).Return(stored, nil)

		resp, err := service.Create(ctx, dto.CreateEventRequest{
			Title:     "Open Day",
			EventDate: strPtr("2026-09-12"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.False(t, resp.IsPublished)
		require.NotNil(t, resp.ImageURL)
		assert.Equal(t, "/api/images/3", *resp.ImageURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		mockRepo := new(MockEventRepository)
		service := NewEventService(log, mockRepo)

		boom := errors.New("insert failed")
		mockRepo.On("Create", ctx, mock.AnythingOfType("models.Event")).
			Return(models.Event{}, boom)

		_, err := service.Create(ctx, dto.CreateEventRequest{Title: "Open Day"})

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("total matches the returned rows", func(t *testing.T) {
		mockRepo := new(MockEventRepository)
		service := NewEventService(log, mockRepo)

		mockRepo.On("List", ctx).Return([]models.Event{
			{ID: 1, Title: "First", IsPublished: true},
			{ID: 2, Title: "Second", IsPublished: true},
		}, nil)

		resp, err := service.List(ctx)

		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, int64(2), resp.Total)
	})

	t.Run("empty listing yields an empty data array, not null", func(t *testing.T) {
		mockRepo := new(MockEventRepository)
		service := NewEventService(log, mockRepo)

		mockRepo.On("List", ctx).Return([]models.Event{}, nil)

		resp, err := service.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
		assert.Equal(t, int64(0), resp.Total)
	})
}

func TestEventService_GetByID(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("propagates not found", func(t *testing.T) {
		mockRepo := new(MockEventRepository)
		service := NewEventService(log, mockRepo)

		mockRepo.On("GetByID", ctx, int64(404)).Return(models.Event{}, storage.ErrNotFound)

		_, err := service.GetByID(ctx, 404)

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("passes only the provided fields through", func(t *testing.T) {
		mockRepo := new(MockEventRepository)
		service := NewEventService(log, mockRepo)

		published := true
		mockRepo.On("Update", ctx, int64(5), mock.MatchedBy(func(upd models.EventUpdate) bool {
			return upd.Title == nil && upd.IsPublished != nil && *upd.IsPublished
		})).Return(models.Event{ID: 5, Title: "Open Day", IsPublished: true}, nil)

		resp, err := service.Update(ctx, 5, dto.UpdateEventRequest{IsPublished: &published})

		require.NoError(t, err)
		assert.True(t, resp.IsPublished)
		mockRepo.AssertExpectations(t)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("propagates not found", func(t *testing.T) {
		mockRepo := new(MockEventRepository)
		service := NewEventService(log, mockRepo)

		mockRepo.On("Delete", ctx, int64(7)).Return(storage.ErrNotFound)

		err := service.Delete(ctx, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
