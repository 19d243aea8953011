package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchReferenceInvalid = errors.New("invalid game, franchise or team reference")
)

type ListMatchesFilter struct {
	models.MatchFilter
	Offset int
	Limit  int
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error)
	Update(ctx context.Context, id int, patch models.MatchPatch) (*models.Match, error)
	Delete(ctx context.Context, id int) error
	ListFixtures(ctx context.Context, filter ListMatchesFilter) ([]models.Fixture, error)
	GetFixture(ctx context.Context, id int) (*models.Fixture, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, game_id, home_franchise_id, away_franchise_id, home_team_id, away_team_id,
	to_char(match_date, 'YYYY-MM-DD'), match_time, status, location, round, score_summary,
	winner_kind, winner_id, extra_data, created_at`

// Порядок расписания: сначала матчи с датой, затем без неё.
const scheduleOrder = ` ORDER BY m.match_date ASC NULLS LAST, m.match_time ASC NULLS LAST, m.id ASC`

func scanMatch(row interface{ Scan(...interface{}) error }, m *models.Match) error {
	return row.Scan(
		&m.ID, &m.GameID, &m.HomeFranchiseID, &m.AwayFranchiseID, &m.HomeTeamID, &m.AwayTeamID,
		&m.MatchDate, &m.MatchTime, &m.Status, &m.Location, &m.Round, &m.ScoreSummary,
		&m.WinnerKind, &m.WinnerID, &m.ExtraData, &m.CreatedAt,
	)
}

func (r *postgresMatchRepository) Create(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (
			game_id, home_franchise_id, away_franchise_id, home_team_id, away_team_id,
			match_date, match_time, status, location, round, score_summary,
			winner_kind, winner_id, extra_data
		) VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		m.GameID, m.HomeFranchiseID, m.AwayFranchiseID, m.HomeTeamID, m.AwayTeamID,
		m.MatchDate, m.MatchTime, m.Status, m.Location, m.Round, m.ScoreSummary,
		m.WinnerKind, m.WinnerID, m.ExtraData,
	).Scan(&m.ID, &m.CreatedAt)
	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	var m models.Match
	if err := scanMatch(r.db.QueryRowContext(ctx, query, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func applyMatchFilter(fb *filterBuilder, filter ListMatchesFilter) {
	if filter.GameID != nil {
		fb.where("m.game_id = ?", *filter.GameID)
	}
	if filter.Status != nil {
		fb.where("m.status = ?", *filter.Status)
	}
	if filter.Round != nil {
		fb.where("m.round = ?", *filter.Round)
	}
	if filter.FranchiseID != nil {
		fb.where("(m.home_franchise_id = ? OR m.away_franchise_id = ?)", *filter.FranchiseID, *filter.FranchiseID)
	}
	fb.raw(scheduleOrder)
	fb.page(filter.Offset, filter.Limit)
}

func (r *postgresMatchRepository) List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error) {
	fb := newFilterBuilder(`
		SELECT m.id, m.game_id, m.home_franchise_id, m.away_franchise_id, m.home_team_id, m.away_team_id,
			to_char(m.match_date, 'YYYY-MM-DD'), m.match_time, m.status, m.location, m.round, m.score_summary,
			m.winner_kind, m.winner_id, m.extra_data, m.created_at
		FROM matches m WHERE 1=1`)
	applyMatchFilter(fb, filter)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := scanMatch(rows, &m); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// Update применяет частичное обновление одним UPDATE ... RETURNING.
// extra_data из patch сливается с сохранённой картой, победитель либо
// заменяется целиком (kind + id), либо очищается по ClearWinner.
func (r *postgresMatchRepository) Update(ctx context.Context, id int, patch models.MatchPatch) (*models.Match, error) {
	query := `
		UPDATE matches SET
			game_id = COALESCE($1, game_id),
			home_franchise_id = COALESCE($2, home_franchise_id),
			away_franchise_id = COALESCE($3, away_franchise_id),
			home_team_id = COALESCE($4, home_team_id),
			away_team_id = COALESCE($5, away_team_id),
			match_date = COALESCE($6::date, match_date),
			match_time = COALESCE($7, match_time),
			status = COALESCE($8, status),
			location = COALESCE($9, location),
			round = COALESCE($10, round),
			score_summary = COALESCE($11, score_summary),
			winner_kind = CASE WHEN $12::boolean THEN NULL
				WHEN $14::integer IS NOT NULL THEN $13::text
				ELSE winner_kind END,
			winner_id = CASE WHEN $12::boolean THEN NULL
				ELSE COALESCE($14::integer, winner_id) END,
			extra_data = CASE WHEN $15::jsonb IS NULL THEN extra_data
				ELSE COALESCE(extra_data, '{}'::jsonb) || $15::jsonb END
		WHERE id = $16
		RETURNING ` + matchColumns

	var winnerKind *string
	var winnerID *int
	if patch.Winner != nil {
		if patch.Winner.Kind != nil {
			kind := string(*patch.Winner.Kind)
			winnerKind = &kind
		}
		winnerID = &patch.Winner.ID
	}

	var m models.Match
	err := scanMatch(r.db.QueryRowContext(ctx, query,
		patch.GameID, patch.HomeFranchiseID, patch.AwayFranchiseID, patch.HomeTeamID, patch.AwayTeamID,
		patch.MatchDate, patch.MatchTime, patch.Status, patch.Location, patch.Round, patch.ScoreSummary,
		patch.ClearWinner, winnerKind, winnerID, patch.ExtraData,
		id,
	), &m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, r.handleMatchError(err)
	}
	return &m, nil
}

// Delete удаляет матч и его участия, затем пересчитывает total_points
// затронутых игроков в той же транзакции.
func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var playerIDs pq.Int64Array
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(array_agg(DISTINCT player_id), '{}') FROM match_players WHERE match_id = $1`, id,
		).Scan(&playerIDs)
		if err != nil {
			return fmt.Errorf("failed to collect match players: %w", err)
		}

		ids := make([]int, 0, len(playerIDs))
		for _, pid := range playerIDs {
			ids = append(ids, int(pid))
		}
		if err := lockPlayers(ctx, tx, ids...); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
		if err != nil {
			return r.handleMatchError(err)
		}
		if err := checkAffectedRows(result, ErrMatchNotFound); err != nil {
			return err
		}
		return recomputePlayerTotals(ctx, tx, ids...)
	})
}

const fixtureSelect = `
	SELECT m.id, m.game_id, g.name,
		m.home_franchise_id, hf.name, m.away_franchise_id, af.name,
		m.home_team_id, ht.name, m.away_team_id, awt.name,
		to_char(m.match_date, 'YYYY-MM-DD'), m.match_time, m.status, m.location, m.round, m.score_summary,
		m.winner_kind, m.winner_id, m.extra_data
	FROM matches m
	LEFT JOIN games g ON g.id = m.game_id
	LEFT JOIN franchises hf ON hf.id = m.home_franchise_id
	LEFT JOIN franchises af ON af.id = m.away_franchise_id
	LEFT JOIN teams ht ON ht.id = m.home_team_id
	LEFT JOIN teams awt ON awt.id = m.away_team_id`

func scanFixture(row interface{ Scan(...interface{}) error }, f *models.Fixture) error {
	return row.Scan(
		&f.ID, &f.GameID, &f.GameName,
		&f.HomeFranchiseID, &f.HomeFranchiseName, &f.AwayFranchiseID, &f.AwayFranchiseName,
		&f.HomeTeamID, &f.HomeTeamName, &f.AwayTeamID, &f.AwayTeamName,
		&f.MatchDate, &f.MatchTime, &f.Status, &f.Location, &f.Round, &f.ScoreSummary,
		&f.WinnerKind, &f.WinnerID, &f.ExtraData,
	)
}

// ListFixtures возвращает матчи с именами игры, франшиз и команд. Победитель
// не разрешается здесь: этим занимается сервис.
func (r *postgresMatchRepository) ListFixtures(ctx context.Context, filter ListMatchesFilter) ([]models.Fixture, error) {
	fb := newFilterBuilder(fixtureSelect + ` WHERE 1=1`)
	applyMatchFilter(fb, filter)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fixtures := make([]models.Fixture, 0)
	for rows.Next() {
		var f models.Fixture
		if scanErr := scanFixture(rows, &f); scanErr != nil {
			return nil, scanErr
		}
		fixtures = append(fixtures, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return fixtures, nil
}

func (r *postgresMatchRepository) GetFixture(ctx context.Context, id int) (*models.Fixture, error) {
	var f models.Fixture
	if err := scanFixture(r.db.QueryRowContext(ctx, fixtureSelect+` WHERE m.id = $1`, id), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return ErrMatchReferenceInvalid
	}
	return fmt.Errorf("match query failed: %w", err)
}
