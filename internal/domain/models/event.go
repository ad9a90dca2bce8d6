package models

import "time"

// Event is one row of the events table. Date and time-of-day columns are
// carried as their text representations ("2006-01-02", "15:04:05").
type Event struct {
	ID          int64
	Title       string
	Description *string
	EventType   *string
	ImageID     *int64
	EventDate   *string
	StartTime   *string
	EndTime     *string
	Location    *string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventUpdate is a partial update. A nil field keeps the stored value;
// there is no way to clear a nullable column back to null through it.
type EventUpdate struct {
	Title       *string
	Description *string
	EventType   *string
	ImageID     *int64
	EventDate   *string
	StartTime   *string
	EndTime     *string
	Location    *string
	IsPublished *bool
}
