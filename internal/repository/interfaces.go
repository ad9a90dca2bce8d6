package repository

import (
	"context"

	"clubhub/internal/domain/models"
)

type EventRepository interface {
	Create(ctx context.Context, event models.Event) (models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (models.Event, error)
	Update(ctx context.Context, id int64, upd models.EventUpdate) (models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type GalleryRepository interface {
	Create(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error)
	List(ctx context.Context) ([]models.GalleryItem, error)
	GetByID(ctx context.Context, id int64) (models.GalleryItem, error)
	Update(ctx context.Context, id int64, upd models.GalleryItemUpdate) (models.GalleryItem, error)
	Delete(ctx context.Context, id int64) error
}

type TeamRepository interface {
	Create(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	List(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id int64) (models.TeamMember, error)
	Update(ctx context.Context, id int64, upd models.TeamMemberUpdate) (models.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Create(ctx context.Context, image models.Image) (models.ImageMetadata, error)
	GetByID(ctx context.Context, id int64) (models.Image, error)
	ListMetadata(ctx context.Context, filter models.ImageFilter) ([]models.ImageMetadata, int64, error)
	UpdateMetadata(ctx context.Context, id int64, upd models.ImageMetadataUpdate) (models.ImageMetadata, error)
	Delete(ctx context.Context, id int64) error
}
