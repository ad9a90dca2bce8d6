package models

import "time"

type GalleryItem struct {
	ID              int64
	Title           *string
	Description     *string
	ImageID         *int64
	DisplayOrder    *int64
	IsFeatured      bool
	GalleryCategory *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type GalleryItemUpdate struct {
	Title           *string
	Description     *string
	ImageID         *int64
	DisplayOrder    *int64
	IsFeatured      *bool
	GalleryCategory *string
}
