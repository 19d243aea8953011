package repositories

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/champion-league/db"
	"github.com/Dosada05/champion-league/models"
)

// testDSNEnv указывает на пустую Postgres-базу для интеграционных тестов.
const testDSNEnv = "LEAGUE_TEST_DATABASE_URL"

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping Postgres integration test", testDSNEnv)
	}
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if _, err := db.Migrate(conn, db.MigrateUp); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return conn
}

func TestParticipantConcurrentCreatesKeepPlayerTotal(t *testing.T) {
	conn := openTestDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	suffix := uuid.NewString()
	var gameID, playerID, matchID int
	if err := conn.QueryRowContext(ctx,
		`INSERT INTO games (name) VALUES ($1) RETURNING id`, "Darts "+suffix,
	).Scan(&gameID); err != nil {
		t.Fatalf("insert game: %v", err)
	}
	if err := conn.QueryRowContext(ctx,
		`INSERT INTO players (name) VALUES ($1) RETURNING id`, "Player "+suffix,
	).Scan(&playerID); err != nil {
		t.Fatalf("insert player: %v", err)
	}
	if err := conn.QueryRowContext(ctx,
		`INSERT INTO matches (game_id) VALUES ($1) RETURNING id`, gameID,
	).Scan(&matchID); err != nil {
		t.Fatalf("insert match: %v", err)
	}
	t.Cleanup(func() {
		bg := context.Background()
		_, _ = conn.ExecContext(bg, `DELETE FROM matches WHERE id = $1`, matchID)
		_, _ = conn.ExecContext(bg, `DELETE FROM players WHERE id = $1`, playerID)
		_, _ = conn.ExecContext(bg, `DELETE FROM games WHERE id = $1`, gameID)
	})

	repo := NewPostgresParticipantRepository(conn)
	const writers = 16
	g, gctx := errgroup.WithContext(ctx)
	for i := 1; i <= writers; i++ {
		points := i
		g.Go(func() error {
			return repo.Create(gctx, &models.MatchParticipant{
				MatchID:      matchID,
				PlayerID:     playerID,
				PointsEarned: points,
			})
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Create() error = %v", err)
	}

	var total, sum int
	if err := conn.QueryRowContext(ctx,
		`SELECT p.total_points, COALESCE((SELECT SUM(points_earned) FROM match_players WHERE player_id = p.id), 0)
		FROM players p WHERE p.id = $1`, playerID,
	).Scan(&total, &sum); err != nil {
		t.Fatalf("read totals: %v", err)
	}
	want := writers * (writers + 1) / 2
	if sum != want {
		t.Fatalf("sum of points_earned = %d, want %d", sum, want)
	}
	if total != sum {
		t.Errorf("total_points = %d, want %d", total, sum)
	}
}
