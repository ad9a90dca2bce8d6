package dto

import (
	"io"
	"time"

	"clubhub/internal/domain/models"
)

// ImageUploadInput carries the multipart upload into the service layer.
// Body is the raw file part; the service reads it incrementally so an
// oversized upload is cut off without buffering the whole payload.
type ImageUploadInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
	Category    *string
	Description *string
}

type ImageUploadResponse struct {
	ID          int64     `json:"id"`
	ImageName   string    `json:"image_name"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `json:"content_type"`
	Category    *string   `json:"category"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func ToImageUploadResponse(meta models.ImageMetadata) ImageUploadResponse {
	return ImageUploadResponse{
		ID:          meta.ID,
		ImageName:   meta.ImageName,
		FileSize:    meta.FileSize,
		ContentType: meta.ContentType,
		Category:    meta.Category,
		UploadedAt:  meta.UploadedAt,
	}
}

type ImageMetadataResponse struct {
	ID          int64     `json:"id"`
	ImageName   string    `json:"image_name"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToImageMetadataResponse(meta models.ImageMetadata) ImageMetadataResponse {
	return ImageMetadataResponse{
		ID:          meta.ID,
		ImageName:   meta.ImageName,
		ContentType: meta.ContentType,
		FileSize:    meta.FileSize,
		Category:    meta.Category,
		Description: meta.Description,
		UploadedAt:  meta.UploadedAt,
		UpdatedAt:   meta.UpdatedAt,
	}
}

type ListImagesQuery struct {
	Category *string `query:"category"`
	Page     int     `query:"page"`
	PageSize int     `query:"page_size"`
}

func (q ListImagesQuery) ToFilter() models.ImageFilter {
	return models.ImageFilter{
		Category: q.Category,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

type UpdateImageRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

func (r UpdateImageRequest) ToUpdate() models.ImageMetadataUpdate {
	return models.ImageMetadataUpdate{
		Category:    r.Category,
		Description: r.Description,
	}
}

type ImageListResponse struct {
	Data     []ImageMetadataResponse `json:"data"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}
