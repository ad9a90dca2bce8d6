package services

import (
	"context"
	"fmt"
	"log/slog"

	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/repository"
	"clubhub/internal/transport/http/dto"
)

type TeamService struct {
	log  *slog.Logger
	repo repository.TeamRepository
}

func NewTeamService(log *slog.Logger, repo repository.TeamRepository) *TeamService {
	return &TeamService{
		log:  log,
		repo: repo,
	}
}

func (s *TeamService) Create(ctx context.Context, req dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	const op = "team_service.Create"

	member, err := s.repo.Create(ctx, req.ToDomain())
	if err != nil {
		s.log.Error("failed to create team member", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("team member created", slog.String("op", op), slog.Int64("member_id", member.ID))

	resp := dto.ToTeamMemberResponse(member)
	return &resp, nil
}

func (s *TeamService) List(ctx context.Context) (*dto.TeamListResponse, error) {
	const op = "team_service.List"

	members, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list team members", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := &dto.TeamListResponse{
		Data:  make([]dto.TeamMemberResponse, 0, len(members)),
		Total: int64(len(members)),
	}
	for _, member := range members {
		resp.Data = append(resp.Data, dto.ToTeamMemberResponse(member))
	}

	return resp, nil
}

func (s *TeamService) GetByID(ctx context.Context, id int64) (*dto.TeamMemberResponse, error) {
	const op = "team_service.GetByID"

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.ToTeamMemberResponse(member)
	return &resp, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, req dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	const op = "team_service.Update"

	member, err := s.repo.Update(ctx, id, req.ToUpdate())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("team member updated", slog.String("op", op), slog.Int64("member_id", id))

	resp := dto.ToTeamMemberResponse(member)
	return &resp, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	const op = "team_service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("team member deleted", slog.String("op", op), slog.Int64("member_id", id))

	return nil
}
