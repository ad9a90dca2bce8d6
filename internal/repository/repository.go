package repository

import (
	"errors"
	"fmt"

	"clubhub/internal/storage"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Repository bundles the per-resource repositories over one shared pool.
type Repository struct {
	db      *pgxpool.Pool
	Event   EventRepository
	Gallery GalleryRepository
	Team    TeamRepository
	Image   ImageRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:      db,
		Event:   NewEventRepository(db),
		Gallery: NewGalleryRepository(db),
		Team:    NewTeamRepository(db),
		Image:   NewImageRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}

const uniqueViolationCode = "23505"

// translateError maps driver failures onto the storage sentinel errors.
// "No row" is always surfaced as storage.ErrNotFound, never as a generic
// database failure.
func translateError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}

	return fmt.Errorf("%s: %w", op, err)
}
