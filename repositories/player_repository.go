package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrPlayerFranchiseInvalid = errors.New("invalid franchise reference")
)

type ListPlayersFilter struct {
	FranchiseID *int
	Offset      int
	Limit       int
}

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error)
	Update(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error)
	Delete(ctx context.Context, id int) error
	ListTeams(ctx context.Context, playerID int) ([]models.PlayerTeam, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, name, franchise_id, email, profile_image_path, total_points, extra_data, created_at`

func scanPlayer(row interface{ Scan(...interface{}) error }, p *models.Player) error {
	return row.Scan(&p.ID, &p.Name, &p.FranchiseID, &p.Email, &p.ProfileImagePath, &p.TotalPoints, &p.ExtraData, &p.CreatedAt)
}

// Create всегда начинает с total_points = 0: счётчик ведётся только по участиям.
func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (name, franchise_id, email, profile_image_path, extra_data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, total_points, created_at`

	err := r.db.QueryRowContext(ctx, query, p.Name, p.FranchiseID, p.Email, p.ProfileImagePath, p.ExtraData).
		Scan(&p.ID, &p.TotalPoints, &p.CreatedAt)
	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	var p models.Player
	if err := scanPlayer(r.db.QueryRowContext(ctx, query, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error) {
	fb := newFilterBuilder(`SELECT ` + playerColumns + ` FROM players WHERE 1=1`)
	if filter.FranchiseID != nil {
		fb.where("franchise_id = ?", *filter.FranchiseID)
	}
	fb.raw(" ORDER BY id ASC")
	fb.page(filter.Offset, filter.Limit)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := scanPlayer(rows, &p); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error) {
	query := `
		UPDATE players SET
			name = COALESCE($1, name),
			franchise_id = COALESCE($2, franchise_id),
			email = COALESCE($3, email),
			profile_image_path = COALESCE($4, profile_image_path),
			extra_data = COALESCE($5::jsonb, extra_data)
		WHERE id = $6
		RETURNING ` + playerColumns

	var p models.Player
	err := scanPlayer(r.db.QueryRowContext(ctx, query,
		patch.Name, patch.FranchiseID, patch.Email, patch.ProfileImagePath, patch.ExtraData, id,
	), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, r.handlePlayerError(err)
	}
	return &p, nil
}

// Delete удаляет игрока вместе с его членствами и участиями (ON DELETE CASCADE).
func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM players WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) ListTeams(ctx context.Context, playerID int) ([]models.PlayerTeam, error) {
	query := `
		SELECT tp.id, t.id, t.name, tp.role, tp.is_captain, f.name, g.name, tp.extra_data
		FROM team_players tp
		JOIN teams t ON t.id = tp.team_id
		LEFT JOIN franchises f ON f.id = t.franchise_id
		LEFT JOIN games g ON g.id = t.game_id
		WHERE tp.player_id = $1
		ORDER BY t.id ASC`

	rows, err := r.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.PlayerTeam, 0)
	for rows.Next() {
		var pt models.PlayerTeam
		if scanErr := rows.Scan(
			&pt.TeamPlayerID, &pt.TeamID, &pt.TeamName, &pt.Role, &pt.IsCaptain,
			&pt.FranchiseName, &pt.GameName, &pt.ExtraData,
		); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, pt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return ErrPlayerFranchiseInvalid
	}
	return fmt.Errorf("player query failed: %w", err)
}
