package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

var (
	ErrTeamNotFound         = errors.New("team not found")
	ErrTeamInUse            = errors.New("team cannot be deleted as it is referenced by matches")
	ErrTeamReferenceInvalid = errors.New("invalid franchise or game reference")
)

type ListTeamsFilter struct {
	FranchiseID *int
	GameID      *int
	Offset      int
	Limit       int
}

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error)
	ListWithDetails(ctx context.Context, filter ListTeamsFilter) ([]models.TeamWithDetails, error)
	Update(ctx context.Context, id int, patch models.TeamPatch) (*models.Team, error)
	Delete(ctx context.Context, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id, name, franchise_id, game_id, logo_path, extra_data, created_at`

func scanTeam(row interface{ Scan(...interface{}) error }, t *models.Team) error {
	return row.Scan(&t.ID, &t.Name, &t.FranchiseID, &t.GameID, &t.LogoPath, &t.ExtraData, &t.CreatedAt)
}

func (r *postgresTeamRepository) Create(ctx context.Context, t *models.Team) error {
	query := `
		INSERT INTO teams (name, franchise_id, game_id, logo_path, extra_data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, t.Name, t.FranchiseID, t.GameID, t.LogoPath, t.ExtraData).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil && isForeignKeyViolation(err) {
		return ErrTeamReferenceInvalid
	}
	return wrapTeamError(err)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	var t models.Team
	if err := scanTeam(r.db.QueryRowContext(ctx, query, id), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresTeamRepository) applyFilter(fb *filterBuilder, filter ListTeamsFilter) {
	if filter.FranchiseID != nil {
		fb.where("t.franchise_id = ?", *filter.FranchiseID)
	}
	if filter.GameID != nil {
		fb.where("t.game_id = ?", *filter.GameID)
	}
	fb.raw(" ORDER BY t.id ASC")
	fb.page(filter.Offset, filter.Limit)
}

func (r *postgresTeamRepository) List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error) {
	fb := newFilterBuilder(`
		SELECT t.id, t.name, t.franchise_id, t.game_id, t.logo_path, t.extra_data, t.created_at
		FROM teams t WHERE 1=1`)
	r.applyFilter(fb, filter)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if scanErr := scanTeam(rows, &t); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) ListWithDetails(ctx context.Context, filter ListTeamsFilter) ([]models.TeamWithDetails, error) {
	fb := newFilterBuilder(`
		SELECT t.id, t.name, t.franchise_id, t.game_id, t.logo_path, t.extra_data, t.created_at,
			f.name, g.name,
			(SELECT COUNT(*) FROM team_players tp WHERE tp.team_id = t.id)
		FROM teams t
		JOIN franchises f ON f.id = t.franchise_id
		JOIN games g ON g.id = t.game_id
		WHERE 1=1`)
	r.applyFilter(fb, filter)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.TeamWithDetails, 0)
	for rows.Next() {
		var t models.TeamWithDetails
		if scanErr := rows.Scan(
			&t.ID, &t.Name, &t.FranchiseID, &t.GameID, &t.LogoPath, &t.ExtraData, &t.CreatedAt,
			&t.FranchiseName, &t.GameName, &t.PlayersCount,
		); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, id int, patch models.TeamPatch) (*models.Team, error) {
	query := `
		UPDATE teams SET
			name = COALESCE($1, name),
			franchise_id = COALESCE($2, franchise_id),
			game_id = COALESCE($3, game_id),
			logo_path = COALESCE($4, logo_path),
			extra_data = COALESCE($5::jsonb, extra_data)
		WHERE id = $6
		RETURNING ` + teamColumns

	var t models.Team
	err := scanTeam(r.db.QueryRowContext(ctx, query,
		patch.Name, patch.FranchiseID, patch.GameID, patch.LogoPath, patch.ExtraData, id,
	), &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, ErrTeamReferenceInvalid
		}
		return nil, wrapTeamError(err)
	}
	return &t, nil
}

// Delete удаляет команду и её состав; если команда записана в матчах, возвращает ErrTeamInUse.
func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM teams WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrTeamInUse
		}
		return wrapTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func wrapTeamError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("team query failed: %w", err)
}
