package models

import "time"

type TeamMember struct {
	ID           int64
	Name         string
	Position     string
	Bio          *string
	Email        *string
	Phone        *string
	ImageID      *int64
	DisplayOrder *int64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TeamMemberUpdate struct {
	Name         *string
	Position     *string
	Bio          *string
	Email        *string
	Phone        *string
	ImageID      *int64
	DisplayOrder *int64
	IsActive     *bool
}
