package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"clubhub/internal/domain/models"
	"clubhub/internal/lib/imagemime"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/repository"
	"clubhub/internal/storage"
	"clubhub/internal/transport/http/dto"
)

const readChunkSize = 32 * 1024

type ImageService struct {
	log         *slog.Logger
	repo        repository.ImageRepository
	maxFileSize int64
}

func NewImageService(log *slog.Logger, repo repository.ImageRepository, maxFileSize int64) *ImageService {
	return &ImageService{
		log:         log,
		repo:        repo,
		maxFileSize: maxFileSize,
	}
}

// Upload validates and persists one image. The payload is read in
// chunks: the moment the accumulated size passes the limit the upload is
// rejected without draining the rest of the stream, and a client
// disconnect (ctx cancellation) stops accumulation the same way.
func (s *ImageService) Upload(ctx context.Context, input dto.ImageUploadInput) (*dto.ImageUploadResponse, error) {
	const op = "image_service.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", input.FileName),
		slog.String("content_type", input.ContentType),
	)

	if !imagemime.IsValidImageType(input.ContentType) {
		log.Warn("rejected upload with invalid content type")
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	data, err := s.readPayload(ctx, input.Body)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			log.Warn("rejected oversized upload", slog.Int64("max_file_size", s.maxFileSize))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(data) == 0 {
		log.Warn("rejected empty upload")
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmptyFile)
	}

	image := models.Image{
		ImageName:   input.FileName,
		ImageData:   data,
		ContentType: input.ContentType,
		FileSize:    int64(len(data)),
		Category:    input.Category,
		Description: input.Description,
	}

	meta, err := s.repo.Create(ctx, image)
	if err != nil {
		log.Error("failed to save image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image uploaded",
		slog.Int64("image_id", meta.ID),
		slog.Int64("file_size", meta.FileSize),
	)

	resp := dto.ToImageUploadResponse(meta)
	return &resp, nil
}

func (s *ImageService) readPayload(ctx context.Context, body io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, readChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if int64(buf.Len()) > s.maxFileSize {
				return nil, storage.ErrFileTooLarge
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// GetContent returns the full image including payload for raw serving.
func (s *ImageService) GetContent(ctx context.Context, id int64) (*models.Image, error) {
	const op = "image_service.GetContent"

	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &image, nil
}

func (s *ImageService) List(ctx context.Context, query dto.ListImagesQuery) (*dto.ImageListResponse, error) {
	const op = "image_service.List"

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	query.Page = page
	query.PageSize = pageSize

	images, total, err := s.repo.ListMetadata(ctx, query.ToFilter())
	if err != nil {
		s.log.Error("failed to list images", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := &dto.ImageListResponse{
		Data:     make([]dto.ImageMetadataResponse, 0, len(images)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, meta := range images {
		resp.Data = append(resp.Data, dto.ToImageMetadataResponse(meta))
	}

	return resp, nil
}

func (s *ImageService) UpdateMetadata(ctx context.Context, id int64, req dto.UpdateImageRequest) (*dto.ImageMetadataResponse, error) {
	const op = "image_service.UpdateMetadata"

	meta, err := s.repo.UpdateMetadata(ctx, id, req.ToUpdate())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("image metadata updated", slog.String("op", op), slog.Int64("image_id", id))

	resp := dto.ToImageMetadataResponse(meta)
	return &resp, nil
}

func (s *ImageService) Delete(ctx context.Context, id int64) error {
	const op = "image_service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("image deleted", slog.String("op", op), slog.Int64("image_id", id))

	return nil
}
