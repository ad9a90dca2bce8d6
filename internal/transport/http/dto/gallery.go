package dto

import (
	"time"

	"clubhub/internal/domain/models"
)

type CreateGalleryItemRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	DisplayOrder    *int64  `json:"display_order"`
	GalleryCategory *string `json:"gallery_category"`
}

func (r CreateGalleryItemRequest) ToDomain() models.GalleryItem {
	return models.GalleryItem{
		Title:           r.Title,
		Description:     r.Description,
		DisplayOrder:    r.DisplayOrder,
		GalleryCategory: r.GalleryCategory,
	}
}

type UpdateGalleryItemRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ImageID         *int64  `json:"image_id"`
	DisplayOrder    *int64  `json:"display_order"`
	IsFeatured      *bool   `json:"is_featured"`
	GalleryCategory *string `json:"gallery_category"`
}

func (r UpdateGalleryItemRequest) ToUpdate() models.GalleryItemUpdate {
	return models.GalleryItemUpdate{
		Title:           r.Title,
		Description:     r.Description,
		ImageID:         r.ImageID,
		DisplayOrder:    r.DisplayOrder,
		IsFeatured:      r.IsFeatured,
		GalleryCategory: r.GalleryCategory,
	}
}

type GalleryItemResponse struct {
	ID              int64     `json:"id"`
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	ImageURL        *string   `json:"image_url"`
	DisplayOrder    *int64    `json:"display_order"`
	IsFeatured      bool      `json:"is_featured"`
	GalleryCategory *string   `json:"gallery_category"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToGalleryItemResponse(item models.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		ImageURL:        ImageURL(item.ImageID),
		DisplayOrder:    item.DisplayOrder,
		IsFeatured:      item.IsFeatured,
		GalleryCategory: item.GalleryCategory,
		CreatedAt:       item.CreatedAt,
	}
}

type GalleryListResponse struct {
	Data  []GalleryItemResponse `json:"data"`
	Total int64                 `json:"total"`
}
