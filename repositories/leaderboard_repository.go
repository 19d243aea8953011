package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/champion-league/leaderboard"
)

type postgresLeaderboardSource struct {
	db *sql.DB
}

// NewPostgresLeaderboardSource возвращает источник строк для leaderboard.Aggregator.
func NewPostgresLeaderboardSource(db *sql.DB) leaderboard.Source {
	return &postgresLeaderboardSource{db: db}
}

func (s *postgresLeaderboardSource) Players(ctx context.Context) ([]leaderboard.PlayerRow, error) {
	query := `
		SELECT p.id, p.name, p.franchise_id, f.name, p.total_points
		FROM players p
		LEFT JOIN franchises f ON f.id = p.franchise_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("leaderboard players query: %w", err)
	}
	defer rows.Close()

	out := make([]leaderboard.PlayerRow, 0)
	for rows.Next() {
		var p leaderboard.PlayerRow
		if err := rows.Scan(&p.ID, &p.Name, &p.FranchiseID, &p.FranchiseName, &p.TotalPoints); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *postgresLeaderboardSource) Franchises(ctx context.Context) ([]leaderboard.FranchiseRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM franchises`)
	if err != nil {
		return nil, fmt.Errorf("leaderboard franchises query: %w", err)
	}
	defer rows.Close()

	out := make([]leaderboard.FranchiseRow, 0)
	for rows.Next() {
		var f leaderboard.FranchiseRow
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *postgresLeaderboardSource) Teams(ctx context.Context, gameID *int) ([]leaderboard.TeamRow, error) {
	query := `
		SELECT t.id, t.name, t.franchise_id, f.name, t.game_id, g.name
		FROM teams t
		JOIN franchises f ON f.id = t.franchise_id
		JOIN games g ON g.id = t.game_id
		WHERE ($1::integer IS NULL OR t.game_id = $1)`

	rows, err := s.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("leaderboard teams query: %w", err)
	}
	defer rows.Close()

	out := make([]leaderboard.TeamRow, 0)
	for rows.Next() {
		var t leaderboard.TeamRow
		if err := rows.Scan(&t.ID, &t.Name, &t.FranchiseID, &t.FranchiseName, &t.GameID, &t.GameName); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *postgresLeaderboardSource) Memberships(ctx context.Context) ([]leaderboard.MembershipRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT team_id, player_id FROM team_players`)
	if err != nil {
		return nil, fmt.Errorf("leaderboard memberships query: %w", err)
	}
	defer rows.Close()

	out := make([]leaderboard.MembershipRow, 0)
	for rows.Next() {
		var m leaderboard.MembershipRow
		if err := rows.Scan(&m.TeamID, &m.PlayerID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *postgresLeaderboardSource) Participations(ctx context.Context, gameID *int) ([]leaderboard.ParticipationRow, error) {
	query := `
		SELECT mp.player_id, m.game_id, mp.points_earned, mp.is_winner
		FROM match_players mp
		JOIN matches m ON m.id = mp.match_id
		WHERE ($1::integer IS NULL OR m.game_id = $1)`

	rows, err := s.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("leaderboard participations query: %w", err)
	}
	defer rows.Close()

	out := make([]leaderboard.ParticipationRow, 0)
	for rows.Next() {
		var p leaderboard.ParticipationRow
		if err := rows.Scan(&p.PlayerID, &p.GameID, &p.PointsEarned, &p.IsWinner); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
