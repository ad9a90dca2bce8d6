package dto

import (
	"time"

	"clubhub/internal/domain/models"
)

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"`
	EventDate   *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04:05"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04:05"`
	Location    *string `json:"location"`
}

func (r CreateEventRequest) ToDomain() models.Event {
	return models.Event{
		Title:       r.Title,
		Description: r.Description,
		EventType:   r.EventType,
		EventDate:   r.EventDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
	}
}

// UpdateEventRequest is a patch shape: omitted fields keep their stored
// values. A JSON null is indistinguishable from an omitted field here,
// so nullable fields cannot be cleared through this request.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"`
	ImageID     *int64  `json:"image_id"`
	EventDate   *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04:05"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04:05"`
	Location    *string `json:"location"`
	IsPublished *bool   `json:"is_published"`
}

func (r UpdateEventRequest) ToUpdate() models.EventUpdate {
	return models.EventUpdate{
		Title:       r.Title,
		Description: r.Description,
		EventType:   r.EventType,
		ImageID:     r.ImageID,
		EventDate:   r.EventDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		IsPublished: r.IsPublished,
	}
}

type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventType   *string   `json:"event_type"`
	ImageURL    *string   `json:"image_url"`
	EventDate   *string   `json:"event_date"`
	StartTime   *string   `json:"start_time"`
	EndTime     *string   `json:"end_time"`
	Location    *string   `json:"location"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToEventResponse(event models.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		EventType:   event.EventType,
		ImageURL:    ImageURL(event.ImageID),
		EventDate:   event.EventDate,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Location:    event.Location,
		IsPublished: event.IsPublished,
		CreatedAt:   event.CreatedAt,
	}
}

type EventListResponse struct {
	Data  []EventResponse `json:"data"`
	Total int64           `json:"total"`
}
