package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

var (
	ErrMembershipNotFound         = errors.New("team membership not found")
	ErrMembershipConflict         = errors.New("player is already a member of this team")
	ErrMembershipReferenceInvalid = errors.New("invalid team or player reference")
)

type ListMembershipsFilter struct {
	TeamID   *int
	PlayerID *int
	Offset   int
	Limit    int
}

// MembershipPatch описывает частичное обновление членства в команде.
type MembershipPatch struct {
	Role      *string
	IsCaptain *bool
	ExtraData models.ExtraData
}

type MembershipRepository interface {
	Create(ctx context.Context, m *models.TeamMembership) error
	GetByID(ctx context.Context, id int) (*models.TeamMembership, error)
	List(ctx context.Context, filter ListMembershipsFilter) ([]models.TeamMembership, error)
	Update(ctx context.Context, id int, patch MembershipPatch) (*models.TeamMembership, error)
	Delete(ctx context.Context, id int) error
	DeleteByTeamAndPlayer(ctx context.Context, teamID, playerID int) error
	ListRoster(ctx context.Context, teamID int) ([]models.TeamRosterEntry, error)
}

type postgresMembershipRepository struct {
	db *sql.DB
}

func NewPostgresMembershipRepository(db *sql.DB) MembershipRepository {
	return &postgresMembershipRepository{db: db}
}

const membershipColumns = `id, team_id, player_id, role, is_captain, extra_data, created_at`

func scanMembership(row interface{ Scan(...interface{}) error }, m *models.TeamMembership) error {
	return row.Scan(&m.ID, &m.TeamID, &m.PlayerID, &m.Role, &m.IsCaptain, &m.ExtraData, &m.CreatedAt)
}

func (r *postgresMembershipRepository) Create(ctx context.Context, m *models.TeamMembership) error {
	query := `
		INSERT INTO team_players (team_id, player_id, role, is_captain, extra_data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, m.TeamID, m.PlayerID, m.Role, m.IsCaptain, m.ExtraData).
		Scan(&m.ID, &m.CreatedAt)
	return r.handleMembershipError(err)
}

func (r *postgresMembershipRepository) GetByID(ctx context.Context, id int) (*models.TeamMembership, error) {
	query := `SELECT ` + membershipColumns + ` FROM team_players WHERE id = $1`

	var m models.TeamMembership
	if err := scanMembership(r.db.QueryRowContext(ctx, query, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresMembershipRepository) List(ctx context.Context, filter ListMembershipsFilter) ([]models.TeamMembership, error) {
	fb := newFilterBuilder(`SELECT ` + membershipColumns + ` FROM team_players WHERE 1=1`)
	if filter.TeamID != nil {
		fb.where("team_id = ?", *filter.TeamID)
	}
	if filter.PlayerID != nil {
		fb.where("player_id = ?", *filter.PlayerID)
	}
	fb.raw(" ORDER BY id ASC")
	fb.page(filter.Offset, filter.Limit)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]models.TeamMembership, 0)
	for rows.Next() {
		var m models.TeamMembership
		if scanErr := scanMembership(rows, &m); scanErr != nil {
			return nil, scanErr
		}
		memberships = append(memberships, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *postgresMembershipRepository) Update(ctx context.Context, id int, patch MembershipPatch) (*models.TeamMembership, error) {
	query := `
		UPDATE team_players SET
			role = COALESCE($1, role),
			is_captain = COALESCE($2, is_captain),
			extra_data = COALESCE($3::jsonb, extra_data)
		WHERE id = $4
		RETURNING ` + membershipColumns

	var m models.TeamMembership
	err := scanMembership(r.db.QueryRowContext(ctx, query, patch.Role, patch.IsCaptain, patch.ExtraData, id), &m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, r.handleMembershipError(err)
	}
	return &m, nil
}

func (r *postgresMembershipRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM team_players WHERE id = $1`, id)
	if err != nil {
		return r.handleMembershipError(err)
	}
	return checkAffectedRows(result, ErrMembershipNotFound)
}

func (r *postgresMembershipRepository) DeleteByTeamAndPlayer(ctx context.Context, teamID, playerID int) error {
	query := `DELETE FROM team_players WHERE team_id = $1 AND player_id = $2`
	result, err := r.db.ExecContext(ctx, query, teamID, playerID)
	if err != nil {
		return r.handleMembershipError(err)
	}
	return checkAffectedRows(result, ErrMembershipNotFound)
}

func (r *postgresMembershipRepository) ListRoster(ctx context.Context, teamID int) ([]models.TeamRosterEntry, error) {
	query := `
		SELECT tp.id, p.id, p.name, p.email, p.total_points, tp.role, tp.is_captain, tp.extra_data
		FROM team_players tp
		JOIN players p ON p.id = tp.player_id
		WHERE tp.team_id = $1
		ORDER BY tp.is_captain DESC, p.name ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := make([]models.TeamRosterEntry, 0)
	for rows.Next() {
		var e models.TeamRosterEntry
		if scanErr := rows.Scan(
			&e.TeamPlayerID, &e.PlayerID, &e.PlayerName, &e.PlayerEmail, &e.TotalPoints,
			&e.Role, &e.IsCaptain, &e.ExtraData,
		); scanErr != nil {
			return nil, scanErr
		}
		roster = append(roster, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return roster, nil
}

func (r *postgresMembershipRepository) handleMembershipError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isUniqueViolation(err, "team_players_team_player_key"):
		return ErrMembershipConflict
	case isForeignKeyViolation(err):
		return ErrMembershipReferenceInvalid
	}
	return fmt.Errorf("team membership query failed: %w", err)
}
