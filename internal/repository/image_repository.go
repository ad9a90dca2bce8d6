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

// Metadata projection excludes the binary payload, which only GetByID
// loads.
const imageMetadataColumns = "id, image_name, content_type, file_size, category, description, uploaded_at, updated_at"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ImageRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewImageRepository(db *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create persists payload and metadata as one row; readers never observe
// a partial image.
func (r *ImageRepo) Create(ctx context.Context, image models.Image) (models.ImageMetadata, error) {
	const op = "repository.image_repository.Create"

	query, args, err := r.sb.Insert("images").
		Columns(
			"image_name",
			"image_data",
			"content_type",
			"file_size",
			"category",
			"description",
		).
		Values(
			image.ImageName,
			image.ImageData,
			image.ContentType,
			image.FileSize,
			image.Category,
			image.Description,
		).
		Suffix("RETURNING " + imageMetadataColumns).
		ToSql()
	if err != nil {
		return models.ImageMetadata{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanImageMetadata(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.ImageMetadata{}, translateError(op, err)
	}

	return created, nil
}

// GetByID returns the full row including the binary payload, for raw
// content serving.
func (r *ImageRepo) GetByID(ctx context.Context, id int64) (models.Image, error) {
	const op = "repository.image_repository.GetByID"

	query, args, err := r.sb.Select(
		"id",
		"image_name",
		"image_data",
		"content_type",
		"file_size",
		"category",
		"description",
		"uploaded_at",
		"updated_at",
	).
		From("images").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Image{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var image models.Image
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&image.ID,
		&image.ImageName,
		&image.ImageData,
		&image.ContentType,
		&image.FileSize,
		&image.Category,
		&image.Description,
		&image.UploadedAt,
		&image.UpdatedAt,
	)
	if err != nil {
		return models.Image{}, translateError(op, err)
	}

	return image, nil
}

// ListMetadata returns one page of image metadata plus the total row
// count over the same filter. The total comes from a separate count
// query, not the page length.
func (r *ImageRepo) ListMetadata(ctx context.Context, filter models.ImageFilter) ([]models.ImageMetadata, int64, error) {
	const op = "repository.image_repository.ListMetadata"

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	queryBuilder := r.sb.Select(imageMetadataColumns).From("images")
	countBuilder := r.sb.Select("COUNT(*)").From("images")

	if filter.Category != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"category": *filter.Category})
		countBuilder = countBuilder.Where(sq.Eq{"category": *filter.Category})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to build count query: %w", op, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, translateError(op, err)
	}

	query, args, err := queryBuilder.
		OrderBy("uploaded_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, translateError(op, err)
	}
	defer rows.Close()

	var images []models.ImageMetadata
	for rows.Next() {
		meta, err := scanImageMetadata(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		images = append(images, meta)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return images, total, nil
}

func (r *ImageRepo) UpdateMetadata(ctx context.Context, id int64, upd models.ImageMetadataUpdate) (models.ImageMetadata, error) {
	const op = "repository.image_repository.UpdateMetadata"

	query, args, err := r.sb.Update("images").
		Set("category", sq.Expr("COALESCE(?, category)", upd.Category)).
		Set("description", sq.Expr("COALESCE(?, description)", upd.Description)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + imageMetadataColumns).
		ToSql()
	if err != nil {
		return models.ImageMetadata{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	meta, err := scanImageMetadata(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.ImageMetadata{}, translateError(op, err)
	}

	return meta, nil
}

func (r *ImageRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.image_repository.Delete"

	query, args, err := r.sb.Delete("images").
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

func scanImageMetadata(row pgx.Row) (models.ImageMetadata, error) {
	var meta models.ImageMetadata
	err := row.Scan(
		&meta.ID,
		&meta.ImageName,
		&meta.ContentType,
		&meta.FileSize,
		&meta.Category,
		&meta.Description,
		&meta.UploadedAt,
		&meta.UpdatedAt,
	)
	return meta, err
}
