package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/champion-league/feed"
	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
)

// ParticipantService ведёт результаты игроков в матчах. После каждой записи
// подписчикам матча уходит RESULT_UPDATED с актуальной карточкой.
type ParticipantService interface {
	AddParticipant(ctx context.Context, input CreateParticipantInput) (*models.MatchParticipant, error)
	GetParticipantByID(ctx context.Context, id int) (*models.MatchParticipant, error)
	ListParticipants(ctx context.Context, matchID *int, page Pagination) ([]models.MatchParticipant, error)
	UpdateParticipant(ctx context.Context, id int, input UpdateParticipantInput) (*models.MatchParticipant, error)
	DeleteParticipant(ctx context.Context, id int) error
}

type CreateParticipantInput struct {
	MatchID      int              `json:"match_id"`
	PlayerID     int              `json:"player_id"`
	FranchiseID  *int             `json:"franchise_id"`
	TeamID       *int             `json:"team_id"`
	PointsEarned *int             `json:"points_earned"`
	IsWinner     *bool            `json:"is_winner"`
	ExtraData    models.ExtraData `json:"extra_data"`
}

type UpdateParticipantInput struct {
	PointsEarned *int             `json:"points_earned"`
	IsWinner     *bool            `json:"is_winner"`
	ExtraData    models.ExtraData `json:"extra_data"`
}

type participantService struct {
	participantRepo repositories.ParticipantRepository
	fixtures        FixtureService
	publisher       MatchPublisher
	logger          *slog.Logger
}

func NewParticipantService(
	participantRepo repositories.ParticipantRepository,
	fixtures FixtureService,
	publisher MatchPublisher,
	logger *slog.Logger,
) ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		fixtures:        fixtures,
		publisher:       publisherOrNoop(publisher),
		logger:          logger,
	}
}

func (s *participantService) AddParticipant(ctx context.Context, input CreateParticipantInput) (*models.MatchParticipant, error) {
	if input.MatchID <= 0 || input.PlayerID <= 0 {
		return nil, ErrInvalidReference
	}

	p := &models.MatchParticipant{
		MatchID:     input.MatchID,
		PlayerID:    input.PlayerID,
		FranchiseID: input.FranchiseID,
		TeamID:      input.TeamID,
		ExtraData:   input.ExtraData,
	}
	if input.PointsEarned != nil {
		p.PointsEarned = *input.PointsEarned
	}
	if input.IsWinner != nil {
		p.IsWinner = *input.IsWinner
	}

	if err := s.participantRepo.Create(ctx, p); err != nil {
		return nil, s.mapParticipantError(err, 0)
	}
	s.publishResult(ctx, p.MatchID)
	return p, nil
}

func (s *participantService) GetParticipantByID(ctx context.Context, id int) (*models.MatchParticipant, error) {
	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapParticipantError(err, id)
	}
	return p, nil
}

func (s *participantService) ListParticipants(ctx context.Context, matchID *int, page Pagination) ([]models.MatchParticipant, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.List(ctx, repositories.ListParticipantsFilter{
		MatchID: matchID,
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list match participants: %w", err)
	}
	return participants, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, id int, input UpdateParticipantInput) (*models.MatchParticipant, error) {
	p, err := s.participantRepo.Update(ctx, id, models.MatchParticipantPatch{
		PointsEarned: input.PointsEarned,
		IsWinner:     input.IsWinner,
		ExtraData:    input.ExtraData,
	})
	if err != nil {
		return nil, s.mapParticipantError(err, id)
	}
	s.publishResult(ctx, p.MatchID)
	return p, nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, id int) error {
	deleted, err := s.participantRepo.Delete(ctx, id)
	if err != nil {
		return s.mapParticipantError(err, id)
	}
	s.publishResult(ctx, deleted.MatchID)
	return nil
}

func (s *participantService) publishResult(ctx context.Context, matchID int) {
	fixture, err := s.fixtures.GetFixture(ctx, matchID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load fixture for result broadcast", slog.Int("match_id", matchID), slog.Any("error", err))
		return
	}
	s.publisher.PublishMatch(matchID, fixture.GameID, feed.MessageResultUpdated, fixture)
}

func (s *participantService) mapParticipantError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrParticipantNotFound):
		return ErrParticipantNotFound
	case errors.Is(err, repositories.ErrParticipantReferenceInvalid):
		return ErrInvalidReference
	}
	return fmt.Errorf("match participant operation failed (id: %d): %w", id, err)
}
