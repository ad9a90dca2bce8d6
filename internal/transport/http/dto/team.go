package dto

import (
	"time"

	"clubhub/internal/domain/models"
)

type CreateTeamMemberRequest struct {
	Name         string  `json:"name" validate:"required"`
	Position     string  `json:"position" validate:"required"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	DisplayOrder *int64  `json:"display_order"`
}

func (r CreateTeamMemberRequest) ToDomain() models.TeamMember {
	return models.TeamMember{
		Name:         r.Name,
		Position:     r.Position,
		Bio:          r.Bio,
		Email:        r.Email,
		Phone:        r.Phone,
		DisplayOrder: r.DisplayOrder,
	}
}

type UpdateTeamMemberRequest struct {
	Name         *string `json:"name"`
	Position     *string `json:"position"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	ImageID      *int64  `json:"image_id"`
	DisplayOrder *int64  `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (r UpdateTeamMemberRequest) ToUpdate() models.TeamMemberUpdate {
	return models.TeamMemberUpdate{
		Name:         r.Name,
		Position:     r.Position,
		Bio:          r.Bio,
		Email:        r.Email,
		Phone:        r.Phone,
		ImageID:      r.ImageID,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

type TeamMemberResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Bio          *string   `json:"bio"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	ImageURL     *string   `json:"image_url"`
	DisplayOrder *int64    `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToTeamMemberResponse(member models.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:           member.ID,
		Name:         member.Name,
		Position:     member.Position,
		Bio:          member.Bio,
		Email:        member.Email,
		Phone:        member.Phone,
		ImageURL:     ImageURL(member.ImageID),
		DisplayOrder: member.DisplayOrder,
		IsActive:     member.IsActive,
		CreatedAt:    member.CreatedAt,
	}
}

type TeamListResponse struct {
	Data  []TeamMemberResponse `json:"data"`
	Total int64                `json:"total"`
}
