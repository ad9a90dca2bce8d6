package models

import "time"

// Image is the full images row including the binary payload. The payload
// is large, so listings use ImageMetadata instead.
type Image struct {
	ID          int64
	ImageName   string
	ImageData   []byte
	ContentType string
	FileSize    int64
	Category    *string
	Description *string
	UploadedAt  time.Time
	UpdatedAt   time.Time
}

// ImageMetadata is the images row without the payload.
type ImageMetadata struct {
	ID          int64
	ImageName   string
	ContentType string
	FileSize    int64
	Category    *string
	Description *string
	UploadedAt  time.Time
	UpdatedAt   time.Time
}

// ImageFilter narrows and pages a metadata listing.
type ImageFilter struct {
	Category *string
	Page     int
	PageSize int
}

type ImageMetadataUpdate struct {
	Category    *string
	Description *string
}
