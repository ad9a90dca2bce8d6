package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"clubhub/internal/domain/models"
	"clubhub/internal/storage"
	"clubhub/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image models.Image) (models.ImageMetadata, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(models.ImageMetadata), args.Error(1)
}

func (m *MockImageRepository) GetByID(ctx context.Context, id int64) (models.Image, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Image), args.Error(1)
}

func (m *MockImageRepository) ListMetadata(ctx context.Context, filter models.ImageFilter) ([]models.ImageMetadata, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.ImageMetadata), args.Get(1).(int64), args.Error(2)
}

func (m *MockImageRepository) UpdateMetadata(ctx context.Context, id int64, upd models.ImageMetadataUpdate) (models.ImageMetadata, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(models.ImageMetadata), args.Error(1)
}

func (m *MockImageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestImageService_Upload(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("rejects invalid content type before reading the body", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		_, err := service.Upload(ctx, dto.ImageUploadInput{
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Body:        strings.NewReader("not an image"),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects payload over the size limit", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 16)

		_, err := service.Upload(ctx, dto.ImageUploadInput{
			FileName:    "big.png",
			ContentType: "image/png",
			Body:        bytes.NewReader(make([]byte, 17)),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("accepts payload exactly at the size limit", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 16)

		mockRepo.On("Create", ctx, mock.AnythingOfType("models.Image")).
			Return(models.ImageMetadata{ID: 1, ImageName: "edge.png", FileSize: 16}, nil)

		resp, err := service.Upload(ctx, dto.ImageUploadInput{
			FileName:    "edge.png",
			ContentType: "image/png",
			Body:        bytes.NewReader(make([]byte, 16)),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(16), resp.FileSize)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		_, err := service.Upload(ctx, dto.ImageUploadInput{
			FileName:    "empty.png",
			ContentType: "image/png",
			Body:        bytes.NewReader(nil),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrEmptyFile)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("stores the payload and returns metadata", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		payload := []byte("fake png bytes")
		category := "events"

		mockRepo.On("Create", ctx, mock.MatchedBy(func(img models.Image) bool {
			return img.ImageName == "photo.png" &&
				img.ContentType == "image/png" &&
				bytes.Equal(img.ImageData, payload) &&
				img.FileSize == int64(len(payload)) &&
				img.Category != nil && *img.Category == category
		})).Return(models.ImageMetadata{
			ID:          7,
			ImageName:   "photo.png",
			ContentType: "image/png",
			FileSize:    int64(len(payload)),
			Category:    &category,
		}, nil)

		resp, err := service.Upload(ctx, dto.ImageUploadInput{
			FileName:    "photo.png",
			ContentType: "image/png",
			Body:        bytes.NewReader(payload),
			Category:    &category,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "photo.png", resp.ImageName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := service.Upload(cancelled, dto.ImageUploadInput{
			FileName:    "photo.png",
			ContentType: "image/png",
			Body:        bytes.NewReader([]byte("data")),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestImageService_List(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("clamps out-of-range paging before hitting the repository", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		mockRepo.On("ListMetadata", ctx, models.ImageFilter{Page: 1, PageSize: 100}).
			Return([]models.ImageMetadata{}, int64(0), nil)

		resp, err := service.List(ctx, dto.ListImagesQuery{Page: -3, PageSize: 500})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 100, resp.PageSize)
		mockRepo.AssertExpectations(t)
	})

	t.Run("total comes from the repository, not the page length", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		mockRepo.On("ListMetadata", ctx, models.ImageFilter{Page: 1, PageSize: 2}).
			Return([]models.ImageMetadata{{ID: 1}, {ID: 2}}, int64(42), nil)

		resp, err := service.List(ctx, dto.ListImagesQuery{Page: 1, PageSize: 2})

		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, int64(42), resp.Total)
		mockRepo.AssertExpectations(t)
	})
}

func TestImageService_Delete(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("propagates not found", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		mockRepo.On("Delete", ctx, int64(99)).Return(storage.ErrNotFound)

		err := service.Delete(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("wraps unexpected errors", func(t *testing.T) {
		mockRepo := new(MockImageRepository)
		service := NewImageService(log, mockRepo, 1024)

		boom := errors.New("connection reset")
		mockRepo.On("Delete", ctx, int64(1)).Return(boom)

		err := service.Delete(ctx, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}
