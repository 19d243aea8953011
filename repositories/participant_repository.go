package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

var (
	ErrParticipantNotFound         = errors.New("match participant not found")
	ErrParticipantReferenceInvalid = errors.New("invalid match, player, franchise or team reference")
)

type ListParticipantsFilter struct {
	MatchID *int
	Offset  int
	Limit   int
}

// ParticipantRepository ведёт результаты игроков в матчах. Каждая запись
// пересчитывает players.total_points в той же транзакции.
type ParticipantRepository interface {
	Create(ctx context.Context, p *models.MatchParticipant) error
	GetByID(ctx context.Context, id int) (*models.MatchParticipant, error)
	List(ctx context.Context, filter ListParticipantsFilter) ([]models.MatchParticipant, error)
	Update(ctx context.Context, id int, patch models.MatchParticipantPatch) (*models.MatchParticipant, error)
	Delete(ctx context.Context, id int) (*models.MatchParticipant, error)
	ListDetailed(ctx context.Context, matchID int) ([]models.MatchParticipantDetail, error)
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

const participantColumns = `id, match_id, player_id, franchise_id, team_id, points_earned, is_winner, extra_data, created_at`

func scanParticipant(row interface{ Scan(...interface{}) error }, p *models.MatchParticipant) error {
	return row.Scan(&p.ID, &p.MatchID, &p.PlayerID, &p.FranchiseID, &p.TeamID, &p.PointsEarned, &p.IsWinner, &p.ExtraData, &p.CreatedAt)
}

func (r *postgresParticipantRepository) Create(ctx context.Context, p *models.MatchParticipant) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockPlayers(ctx, tx, p.PlayerID); err != nil {
			return err
		}
		query := `
			INSERT INTO match_players (match_id, player_id, franchise_id, team_id, points_earned, is_winner, extra_data)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at`

		err := tx.QueryRowContext(ctx, query,
			p.MatchID, p.PlayerID, p.FranchiseID, p.TeamID, p.PointsEarned, p.IsWinner, p.ExtraData,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return r.handleParticipantError(err)
		}
		return recomputePlayerTotals(ctx, tx, p.PlayerID)
	})
}

func (r *postgresParticipantRepository) GetByID(ctx context.Context, id int) (*models.MatchParticipant, error) {
	query := `SELECT ` + participantColumns + ` FROM match_players WHERE id = $1`

	var p models.MatchParticipant
	if err := scanParticipant(r.db.QueryRowContext(ctx, query, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresParticipantRepository) List(ctx context.Context, filter ListParticipantsFilter) ([]models.MatchParticipant, error) {
	fb := newFilterBuilder(`SELECT ` + participantColumns + ` FROM match_players WHERE 1=1`)
	if filter.MatchID != nil {
		fb.where("match_id = ?", *filter.MatchID)
	}
	fb.raw(" ORDER BY id ASC")
	fb.page(filter.Offset, filter.Limit)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]models.MatchParticipant, 0)
	for rows.Next() {
		var p models.MatchParticipant
		if scanErr := scanParticipant(rows, &p); scanErr != nil {
			return nil, scanErr
		}
		participants = append(participants, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *postgresParticipantRepository) Update(ctx context.Context, id int, patch models.MatchParticipantPatch) (*models.MatchParticipant, error) {
	var updated models.MatchParticipant
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockParticipantPlayer(ctx, tx, id); err != nil {
			return err
		}
		query := `
			UPDATE match_players SET
				points_earned = COALESCE($1, points_earned),
				is_winner = COALESCE($2, is_winner),
				extra_data = CASE WHEN $3::jsonb IS NULL THEN extra_data
					ELSE COALESCE(extra_data, '{}'::jsonb) || $3::jsonb END
			WHERE id = $4
			RETURNING ` + participantColumns

		err := scanParticipant(tx.QueryRowContext(ctx, query, patch.PointsEarned, patch.IsWinner, patch.ExtraData, id), &updated)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrParticipantNotFound
			}
			return r.handleParticipantError(err)
		}
		return recomputePlayerTotals(ctx, tx, updated.PlayerID)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete возвращает удалённую запись, чтобы вызывающий мог оповестить о матче.
func (r *postgresParticipantRepository) Delete(ctx context.Context, id int) (*models.MatchParticipant, error) {
	var deleted models.MatchParticipant
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockParticipantPlayer(ctx, tx, id); err != nil {
			return err
		}
		query := `DELETE FROM match_players WHERE id = $1 RETURNING ` + participantColumns
		if err := scanParticipant(tx.QueryRowContext(ctx, query, id), &deleted); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrParticipantNotFound
			}
			return r.handleParticipantError(err)
		}
		return recomputePlayerTotals(ctx, tx, deleted.PlayerID)
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (r *postgresParticipantRepository) ListDetailed(ctx context.Context, matchID int) ([]models.MatchParticipantDetail, error) {
	query := `
		SELECT mp.id, mp.match_id, mp.player_id, mp.franchise_id, mp.team_id, mp.points_earned,
			mp.is_winner, mp.extra_data, mp.created_at, p.name, f.name
		FROM match_players mp
		LEFT JOIN players p ON p.id = mp.player_id
		LEFT JOIN franchises f ON f.id = mp.franchise_id
		WHERE mp.match_id = $1
		ORDER BY mp.points_earned DESC, mp.id ASC`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]models.MatchParticipantDetail, 0)
	for rows.Next() {
		var d models.MatchParticipantDetail
		if scanErr := rows.Scan(
			&d.ID, &d.MatchID, &d.PlayerID, &d.FranchiseID, &d.TeamID, &d.PointsEarned,
			&d.IsWinner, &d.ExtraData, &d.CreatedAt, &d.PlayerName, &d.FranchiseName,
		); scanErr != nil {
			return nil, scanErr
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *postgresParticipantRepository) handleParticipantError(err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return ErrParticipantReferenceInvalid
	}
	return fmt.Errorf("match participant query failed: %w", err)
}
