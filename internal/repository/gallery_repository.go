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

const galleryColumns = "id, title, description, image_id, display_order, is_featured, gallery_category, created_at, updated_at"

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GalleryRepo) Create(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	const op = "repository.gallery_repository.Create"

	query, args, err := r.sb.Insert("gallery").
		Columns(
			"title",
			"description",
			"display_order",
			"gallery_category",
			"is_featured",
		).
		Values(
			item.Title,
			item.Description,
			item.DisplayOrder,
			item.GalleryCategory,
			false,
		).
		Suffix("RETURNING " + galleryColumns).
		ToSql()
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanGalleryItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.GalleryItem{}, translateError(op, err)
	}

	return created, nil
}

// List returns every gallery item. Unlike events and team members there
// is no visibility filter here.
func (r *GalleryRepo) List(ctx context.Context) ([]models.GalleryItem, error) {
	const op = "repository.gallery_repository.List"

	query, args, err := r.sb.Select(galleryColumns).
		From("gallery").
		OrderBy("display_order ASC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return items, nil
}

func (r *GalleryRepo) GetByID(ctx context.Context, id int64) (models.GalleryItem, error) {
	const op = "repository.gallery_repository.GetByID"

	query, args, err := r.sb.Select(galleryColumns).
		From("gallery").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	item, err := scanGalleryItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.GalleryItem{}, translateError(op, err)
	}

	return item, nil
}

func (r *GalleryRepo) Update(ctx context.Context, id int64, upd models.GalleryItemUpdate) (models.GalleryItem, error) {
	const op = "repository.gallery_repository.Update"

	query, args, err := r.sb.Update("gallery").
		Set("title", sq.Expr("COALESCE(?, title)", upd.Title)).
		Set("description", sq.Expr("COALESCE(?, description)", upd.Description)).
		Set("image_id", sq.Expr("COALESCE(?, image_id)", upd.ImageID)).
		Set("display_order", sq.Expr("COALESCE(?, display_order)", upd.DisplayOrder)).
		Set("is_featured", sq.Expr("COALESCE(?, is_featured)", upd.IsFeatured)).
		Set("gallery_category", sq.Expr("COALESCE(?, gallery_category)", upd.GalleryCategory)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + galleryColumns).
		ToSql()
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	item, err := scanGalleryItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.GalleryItem{}, translateError(op, err)
	}

	return item, nil
}

func (r *GalleryRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.gallery_repository.Delete"

	query, args, err := r.sb.Delete("gallery").
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

func scanGalleryItem(row pgx.Row) (models.GalleryItem, error) {
	var item models.GalleryItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.ImageID,
		&item.DisplayOrder,
		&item.IsFeatured,
		&item.GalleryCategory,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}
