package repository

import (
	"context"
	"fmt"

	"clubhub/internal/domain/models"
	"clubhub/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Date and time-of-day columns are selected as text so the rows scan
// into plain strings in the same shape the API serves them.
const eventColumns = "id, title, description, event_type, image_id, event_date::text, start_time::text, end_time::text, location, is_published, created_at, updated_at"

type EventRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewEventRepository(db *pgxpool.Pool) *EventRepo {
	return &EventRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new event. Events always start unpublished.
func (r *EventRepo) Create(ctx context.Context, event models.Event) (models.Event, error) {
	const op = "repository.event_repository.Create"

	query, args, err := r.sb.Insert("events").
		Columns(
			"title",
			"description",
			"event_type",
			"event_date",
			"start_time",
			"end_time",
			"location",
			"is_published",
		).
		Values(
			event.Title,
			event.Description,
			event.EventType,
			event.EventDate,
			event.StartTime,
			event.EndTime,
			event.Location,
			false,
		).
		Suffix("RETURNING " + eventColumns).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Event{}, translateError(op, err)
	}

	return created, nil
}

// List returns published events only, newest event date first.
func (r *EventRepo) List(ctx context.Context) ([]models.Event, error) {
	const op = "repository.event_repository.List"

	query, args, err := r.sb.Select(eventColumns).
		From("events").
		Where(sq.Eq{"is_published": true}).
		OrderBy("event_date DESC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return events, nil
}

// GetByID fetches by id regardless of the publish flag.
func (r *EventRepo) GetByID(ctx context.Context, id int64) (models.Event, error) {
	const op = "repository.event_repository.GetByID"

	query, args, err := r.sb.Select(eventColumns).
		From("events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Event{}, translateError(op, err)
	}

	return event, nil
}

// Update applies a coalescing partial update: nil fields keep the stored
// value, the modification timestamp is always refreshed.
func (r *EventRepo) Update(ctx context.Context, id int64, upd models.EventUpdate) (models.Event, error) {
	const op = "repository.event_repository.Update"

	query, args, err := r.sb.Update("events").
		Set("title", sq.Expr("COALESCE(?, title)", upd.Title)).
		Set("description", sq.Expr("COALESCE(?, description)", upd.Description)).
		Set("event_type", sq.Expr("COALESCE(?, event_type)", upd.EventType)).
		Set("image_id", sq.Expr("COALESCE(?, image_id)", upd.ImageID)).
		Set("event_date", sq.Expr("COALESCE(?, event_date)", upd.EventDate)).
		Set("start_time", sq.Expr("COALESCE(?, start_time)", upd.StartTime)).
		Set("end_time", sq.Expr("COALESCE(?, end_time)", upd.EndTime)).
		Set("location", sq.Expr("COALESCE(?, location)", upd.Location)).
		Set("is_published", sq.Expr("COALESCE(?, is_published)", upd.IsPublished)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + eventColumns).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Event{}, translateError(op, err)
	}

	return event, nil
}

func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.event_repository.Delete"

	query, args, err := r.sb.Delete("events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func scanEvent(row pgx.Row) (models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventType,
		&event.ImageID,
		&event.EventDate,
		&event.StartTime,
		&event.EndTime,
		&event.Location,
		&event.IsPublished,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	return event, err
}
