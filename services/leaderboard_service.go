package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/leaderboard"
	"github.com/Dosada05/champion-league/repositories"
)

type LeaderboardService interface {
	Players(ctx context.Context, q leaderboard.Query) ([]leaderboard.PlayerEntry, error)
	Franchises(ctx context.Context, q leaderboard.Query) ([]leaderboard.FranchiseEntry, error)
	Teams(ctx context.Context, q leaderboard.Query) ([]leaderboard.TeamEntry, error)
	All(ctx context.Context, q leaderboard.Query) (*leaderboard.Combined, error)
}

type leaderboardService struct {
	aggregator *leaderboard.Aggregator
	gameRepo   repositories.GameRepository
}

func NewLeaderboardService(aggregator *leaderboard.Aggregator, gameRepo repositories.GameRepository) LeaderboardService {
	return &leaderboardService{aggregator: aggregator, gameRepo: gameRepo}
}

// checkQuery отклоняет отрицательный limit и неизвестную игру до агрегации.
func (s *leaderboardService) checkQuery(ctx context.Context, q leaderboard.Query) error {
	if q.Limit != nil && *q.Limit < 0 {
		return ErrInvalidLeaderboardLimit
	}
	if q.GameID == nil {
		return nil
	}
	if _, err := s.gameRepo.GetByID(ctx, *q.GameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to check leaderboard game %d: %w", *q.GameID, err)
	}
	return nil
}

func (s *leaderboardService) Players(ctx context.Context, q leaderboard.Query) ([]leaderboard.PlayerEntry, error) {
	if err := s.checkQuery(ctx, q); err != nil {
		return nil, err
	}
	entries, err := s.aggregator.Players(ctx, q)
	return entries, mapLeaderboardError(err)
}

func (s *leaderboardService) Franchises(ctx context.Context, q leaderboard.Query) ([]leaderboard.FranchiseEntry, error) {
	if err := s.checkQuery(ctx, q); err != nil {
		return nil, err
	}
	entries, err := s.aggregator.Franchises(ctx, q)
	return entries, mapLeaderboardError(err)
}

func (s *leaderboardService) Teams(ctx context.Context, q leaderboard.Query) ([]leaderboard.TeamEntry, error) {
	if err := s.checkQuery(ctx, q); err != nil {
		return nil, err
	}
	entries, err := s.aggregator.Teams(ctx, q)
	return entries, mapLeaderboardError(err)
}

func (s *leaderboardService) All(ctx context.Context, q leaderboard.Query) (*leaderboard.Combined, error) {
	if err := s.checkQuery(ctx, q); err != nil {
		return nil, err
	}
	combined, err := s.aggregator.All(ctx, q)
	return combined, mapLeaderboardError(err)
}

func mapLeaderboardError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, leaderboard.ErrInvalidLimit):
		return ErrInvalidLeaderboardLimit
	}
	return fmt.Errorf("failed to build leaderboard: %w", err)
}
