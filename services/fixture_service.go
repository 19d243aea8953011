package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
)

// FixtureService отдаёт матчи с разрешёнными именами соперников и победителя.
// Порядок: по дате и времени, матчи без даты в конце.
type FixtureService interface {
	ListFixtures(ctx context.Context, filter models.MatchFilter, page Pagination) ([]models.Fixture, error)
	GetFixture(ctx context.Context, matchID int) (*models.Fixture, error)
}

type fixtureService struct {
	matchRepo repositories.MatchRepository
	resolver  *WinnerResolver
}

func NewFixtureService(matchRepo repositories.MatchRepository, resolver *WinnerResolver) FixtureService {
	return &fixtureService{matchRepo: matchRepo, resolver: resolver}
}

func (s *fixtureService) ListFixtures(ctx context.Context, filter models.MatchFilter, page Pagination) ([]models.Fixture, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	fixtures, err := s.matchRepo.ListFixtures(ctx, repositories.ListMatchesFilter{
		MatchFilter: filter,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}

	// Один и тот же победитель часто встречается в нескольких матчах.
	cache := make(map[winnerKey]*models.ResolvedWinner)
	for i := range fixtures {
		if err := s.decorate(ctx, &fixtures[i], cache); err != nil {
			return nil, err
		}
	}
	return fixtures, nil
}

func (s *fixtureService) GetFixture(ctx context.Context, matchID int) (*models.Fixture, error) {
	fixture, err := s.matchRepo.GetFixture(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get fixture %d: %w", matchID, err)
	}
	if err := s.decorate(ctx, fixture, nil); err != nil {
		return nil, err
	}
	return fixture, nil
}

func (s *fixtureService) decorate(ctx context.Context, f *models.Fixture, cache map[winnerKey]*models.ResolvedWinner) error {
	f.HomeTeam = namedRef(f.HomeTeamID, f.HomeTeamName)
	f.AwayTeam = namedRef(f.AwayTeamID, f.AwayTeamName)

	if f.WinnerID == nil {
		return nil
	}
	ref := models.WinnerRef{Kind: f.WinnerKind, ID: *f.WinnerID}
	key := winnerKey{id: ref.ID}
	if ref.Kind != nil {
		key.kind = *ref.Kind
	}

	winner, ok := cache[key]
	if !ok {
		var err error
		winner, err = s.resolver.Resolve(ctx, &ref)
		if err != nil {
			return fmt.Errorf("failed to resolve winner of match %d: %w", f.ID, err)
		}
		if cache != nil {
			cache[key] = winner
		}
	}
	f.Winner = winner
	f.WinnerName = winner.Name
	return nil
}

type winnerKey struct {
	kind models.WinnerKind
	id   int
}

func namedRef(id *int, name *string) *models.NamedRef {
	if id == nil || name == nil {
		return nil
	}
	return &models.NamedRef{ID: *id, Name: *name}
}
