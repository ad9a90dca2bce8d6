package services

import (
	"context"
	"fmt"
	"log/slog"

	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/repository"
	"clubhub/internal/transport/http/dto"
)

type GalleryService struct {
	log  *slog.Logger
	repo repository.GalleryRepository
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{
		log:  log,
		repo: repo,
	}
}

func (s *GalleryService) Create(ctx context.Context, req dto.CreateGalleryItemRequest) (*dto.GalleryItemResponse, error) {
	const op = "gallery_service.Create"

	item, err := s.repo.Create(ctx, req.ToDomain())
	if err != nil {
		s.log.Error("failed to create gallery item", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("gallery item created", slog.String("op", op), slog.Int64("item_id", item.ID))

	resp := dto.ToGalleryItemResponse(item)
	return &resp, nil
}

func (s *GalleryService) List(ctx context.Context) (*dto.GalleryListResponse, error) {
	const op = "gallery_service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list gallery", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := &dto.GalleryListResponse{
		Data:  make([]dto.GalleryItemResponse, 0, len(items)),
		Total: int64(len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, dto.ToGalleryItemResponse(item))
	}

	return resp, nil
}

func (s *GalleryService) GetByID(ctx context.Context, id int64) (*dto.GalleryItemResponse, error) {
	const op = "gallery_service.GetByID"

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.ToGalleryItemResponse(item)
	return &resp, nil
}

func (s *GalleryService) Update(ctx context.Context, id int64, req dto.UpdateGalleryItemRequest) (*dto.GalleryItemResponse, error) {
	const op = "gallery_service.Update"

	item, err := s.repo.Update(ctx, id, req.ToUpdate())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("gallery item updated", slog.String("op", op), slog.Int64("item_id", id))

	resp := dto.ToGalleryItemResponse(item)
	return &resp, nil
}

func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	const op = "gallery_service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("gallery item deleted", slog.String("op", op), slog.Int64("item_id", id))

	return nil
}
