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

const teamColumns = "id, name, position, bio, email, phone, image_id, display_order, is_active, created_at, updated_at"

type TeamRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTeamRepository(db *pgxpool.Pool) *TeamRepo {
	return &TeamRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new team member. Members start active.
func (r *TeamRepo) Create(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	const op = "repository.team_repository.Create"

	query, args, err := r.sb.Insert("team_members").
		Columns(
			"name",
			"position",
			"bio",
			"email",
			"phone",
			"display_order",
			"is_active",
		).
		Values(
			member.Name,
			member.Position,
			member.Bio,
			member.Email,
			member.Phone,
			member.DisplayOrder,
			true,
		).
		Suffix("RETURNING " + teamColumns).
		ToSql()
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanTeamMember(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.TeamMember{}, translateError(op, err)
	}

	return created, nil
}

// List returns active members only, in display order.
func (r *TeamRepo) List(ctx context.Context) ([]models.TeamMember, error) {
	const op = "repository.team_repository.List"

	query, args, err := r.sb.Select(teamColumns).
		From("team_members").
		Where(sq.Eq{"is_active": true}).
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

	var members []models.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return members, nil
}

// GetByID fetches by id regardless of the active flag.
func (r *TeamRepo) GetByID(ctx context.Context, id int64) (models.TeamMember, error) {
	const op = "repository.team_repository.GetByID"

	query, args, err := r.sb.Select(teamColumns).
		From("team_members").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	member, err := scanTeamMember(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.TeamMember{}, translateError(op, err)
	}

	return member, nil
}

func (r *TeamRepo) Update(ctx context.Context, id int64, upd models.TeamMemberUpdate) (models.TeamMember, error) {
	const op = "repository.team_repository.Update"

	query, args, err := r.sb.Update("team_members").
		Set("name", sq.Expr("COALESCE(?, name)", upd.Name)).
		Set("position", sq.Expr("COALESCE(?, position)", upd.Position)).
		Set("bio", sq.Expr("COALESCE(?, bio)", upd.Bio)).
		Set("email", sq.Expr("COALESCE(?, email)", upd.Email)).
		Set("phone", sq.Expr("COALESCE(?, phone)", upd.Phone)).
		Set("image_id", sq.Expr("COALESCE(?, image_id)", upd.ImageID)).
		Set("display_order", sq.Expr("COALESCE(?, display_order)", upd.DisplayOrder)).
		Set("is_active", sq.Expr("COALESCE(?, is_active)", upd.IsActive)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + teamColumns).
		ToSql()
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	member, err := scanTeamMember(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.TeamMember{}, translateError(op, err)
	}

	return member, nil
}

func (r *TeamRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.team_repository.Delete"

	query, args, err := r.sb.Delete("team_members").
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

func scanTeamMember(row pgx.Row) (models.TeamMember, error) {
	var member models.TeamMember
	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Position,
		&member.Bio,
		&member.Email,
		&member.Phone,
		&member.ImageID,
		&member.DisplayOrder,
		&member.IsActive,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	return member, err
}
