package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

type DashboardRepository interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type postgresDashboardRepository struct {
	db *sql.DB
}

func NewPostgresDashboardRepository(db *sql.DB) DashboardRepository {
	return &postgresDashboardRepository{db: db}
}

// Stats собирает счётчики лиги одним запросом.
func (r *postgresDashboardRepository) Stats(ctx context.Context) (models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM games),
			(SELECT COUNT(*) FROM franchises),
			(SELECT COUNT(*) FROM players),
			(SELECT COUNT(*) FROM teams),
			(SELECT COUNT(*) FROM matches WHERE status = 'scheduled'),
			(SELECT COUNT(*) FROM matches WHERE status = 'in_progress'),
			(SELECT COUNT(*) FROM matches WHERE status = 'completed'),
			(SELECT COUNT(*) FROM matches WHERE status = 'cancelled'),
			(SELECT COUNT(*) FROM gallery)`

	var s models.DashboardStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.GamesTotal, &s.FranchisesTotal, &s.PlayersTotal, &s.TeamsTotal,
		&s.MatchesScheduled, &s.MatchesInProgress, &s.MatchesCompleted, &s.MatchesCancelled,
		&s.GalleryItemsTotal,
	)
	if err != nil {
		return s, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return s, nil
}
