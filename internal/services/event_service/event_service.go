package services

import (
	"context"
	"fmt"
	"log/slog"

	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/repository"
	"clubhub/internal/transport/http/dto"
)

type EventService struct {
	log  *slog.Logger
	repo repository.EventRepository
}

func NewEventService(log *slog.Logger, repo repository.EventRepository) *EventService {
	return &EventService{
		log:  log,
		repo: repo,
	}
}

func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	const op = "event_service.Create"

	log := s.log.With(slog.String("op", op))

	event, err := s.repo.Create(ctx, req.ToDomain())
	if err != nil {
		log.Error("failed to create event", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event created", slog.Int64("event_id", event.ID))

	resp := dto.ToEventResponse(event)
	return &resp, nil
}

func (s *EventService) List(ctx context.Context) (*dto.EventListResponse, error) {
	const op = "event_service.List"

	events, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list events", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := &dto.EventListResponse{
		Data:  make([]dto.EventResponse, 0, len(events)),
		Total: int64(len(events)),
	}
	for _, event := range events {
		resp.Data = append(resp.Data, dto.ToEventResponse(event))
	}

	return resp, nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*dto.EventResponse, error) {
	const op = "event_service.GetByID"

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.ToEventResponse(event)
	return &resp, nil
}

func (s *EventService) Update(ctx context.Context, id int64, req dto.UpdateEventRequest) (*dto.EventResponse, error) {
	const op = "event_service.Update"

	event, err := s.repo.Update(ctx, id, req.ToUpdate())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event updated", slog.String("op", op), slog.Int64("event_id", id))

	resp := dto.ToEventResponse(event)
	return &resp, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	const op = "event_service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event deleted", slog.String("op", op), slog.Int64("event_id", id))

	return nil
}
