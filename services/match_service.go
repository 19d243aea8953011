package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/champion-league/feed"
	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
	"github.com/Dosada05/champion-league/summary"
)

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context, filter models.MatchFilter, page Pagination) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
	GetMatchPlayers(ctx context.Context, id int) ([]models.MatchParticipantDetail, error)
}

type CreateMatchInput struct {
	GameID          int
	HomeFranchiseID *int
	AwayFranchiseID *int
	HomeTeamID      *int
	AwayTeamID      *int
	MatchDate       *string
	MatchTime       *string
	Status          *models.MatchStatus
	Location        *string
	Round           *string
	ScoreSummary    *string
	Winner          *models.WinnerRef
	ExtraData       models.ExtraData
}

// UpdateMatchInput описывает частичное обновление матча. Победитель очищается
// только явным ClearWinner; ExtraData сливается с сохранёнными данными.
type UpdateMatchInput struct {
	GameID          *int
	HomeFranchiseID *int
	AwayFranchiseID *int
	HomeTeamID      *int
	AwayTeamID      *int
	MatchDate       *string
	MatchTime       *string
	Status          *models.MatchStatus
	Location        *string
	Round           *string
	ScoreSummary    *string
	Winner          *models.WinnerRef
	ClearWinner     bool
	ExtraData       models.ExtraData
}

type MatchServiceDeps struct {
	MatchRepo       repositories.MatchRepository
	ParticipantRepo repositories.ParticipantRepository
	Resolver        *WinnerResolver
	Fixtures        FixtureService
	Summarizer      summary.Summarizer // nil отключает обогащение заметок
	SummaryTimeout  time.Duration
	Publisher       MatchPublisher
	Logger          *slog.Logger
}

type matchService struct {
	matchRepo       repositories.MatchRepository
	participantRepo repositories.ParticipantRepository
	resolver        *WinnerResolver
	fixtures        FixtureService
	summarizer      summary.Summarizer
	summaryTimeout  time.Duration
	publisher       MatchPublisher
	logger          *slog.Logger
}

func NewMatchService(deps MatchServiceDeps) MatchService {
	return &matchService{
		matchRepo:       deps.MatchRepo,
		participantRepo: deps.ParticipantRepo,
		resolver:        deps.Resolver,
		fixtures:        deps.Fixtures,
		summarizer:      deps.Summarizer,
		summaryTimeout:  deps.SummaryTimeout,
		publisher:       publisherOrNoop(deps.Publisher),
		logger:          deps.Logger,
	}
}

func validateMatchFields(status *models.MatchStatus, date, clock *string) error {
	if status != nil && !status.IsValid() {
		return ErrInvalidStatus
	}
	if err := validateMatchDate(date); err != nil {
		return err
	}
	return validateMatchTime(clock)
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if input.GameID <= 0 {
		return nil, ErrInvalidReference
	}
	if err := validateMatchFields(input.Status, input.MatchDate, input.MatchTime); err != nil {
		return nil, err
	}
	if input.Winner != nil {
		if err := s.resolver.Validate(ctx, *input.Winner); err != nil {
			return nil, err
		}
	}

	match := &models.Match{
		GameID:          input.GameID,
		HomeFranchiseID: input.HomeFranchiseID,
		AwayFranchiseID: input.AwayFranchiseID,
		HomeTeamID:      input.HomeTeamID,
		AwayTeamID:      input.AwayTeamID,
		MatchDate:       input.MatchDate,
		MatchTime:       input.MatchTime,
		Status:          models.MatchStatusScheduled,
		Location:        input.Location,
		Round:           input.Round,
		ScoreSummary:    input.ScoreSummary,
		ExtraData:       input.ExtraData,
	}
	if input.Status != nil {
		match.Status = *input.Status
	}
	if input.Winner != nil {
		match.WinnerKind = input.Winner.Kind
		match.WinnerID = &input.Winner.ID
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, s.mapMatchError(err, 0)
	}
	s.publishFixture(ctx, match.ID, match.GameID)
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapMatchError(err, id)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, filter models.MatchFilter, page Pagination) ([]models.Match, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	matches, err := s.matchRepo.List(ctx, repositories.ListMatchesFilter{
		MatchFilter: filter,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error) {
	if err := validateMatchFields(input.Status, input.MatchDate, input.MatchTime); err != nil {
		return nil, err
	}
	if input.Winner != nil && input.ClearWinner {
		return nil, ErrWinnerClearConflict
	}

	if _, err := s.matchRepo.GetByID(ctx, id); err != nil {
		return nil, s.mapMatchError(err, id)
	}
	if input.Winner != nil {
		if err := s.resolver.Validate(ctx, *input.Winner); err != nil {
			return nil, err
		}
	}

	match, err := s.matchRepo.Update(ctx, id, models.MatchPatch{
		GameID:          input.GameID,
		HomeFranchiseID: input.HomeFranchiseID,
		AwayFranchiseID: input.AwayFranchiseID,
		HomeTeamID:      input.HomeTeamID,
		AwayTeamID:      input.AwayTeamID,
		MatchDate:       input.MatchDate,
		MatchTime:       input.MatchTime,
		Status:          input.Status,
		Location:        input.Location,
		Round:           input.Round,
		ScoreSummary:    input.ScoreSummary,
		Winner:          input.Winner,
		ClearWinner:     input.ClearWinner,
		ExtraData:       s.enrichNotes(ctx, id, input.ExtraData),
	})
	if err != nil {
		return nil, s.mapMatchError(err, id)
	}
	s.publishFixture(ctx, match.ID, match.GameID)
	return match, nil
}

// enrichNotes добавляет ai_summary, если в данных обновления есть notes, а
// ai_summary нет. Ошибка сервиса не прерывает обновление: вместо текста
// записывается summary.FailureSentinel.
func (s *matchService) enrichNotes(ctx context.Context, matchID int, extra models.ExtraData) models.ExtraData {
	if s.summarizer == nil || extra == nil {
		return extra
	}
	notes, _ := extra.String(models.ExtraNotesKey)
	if strings.TrimSpace(notes) == "" {
		return extra
	}
	if existing, _ := extra.String(models.ExtraAISummaryKey); strings.TrimSpace(existing) != "" {
		return extra
	}

	summaryCtx, cancel := context.WithTimeout(ctx, s.summaryTimeout)
	defer cancel()

	enriched := extra.Clone()
	text, err := summary.Run(summaryCtx, s.summarizer, summary.MatchReportPrompt(notes))
	if err != nil {
		s.logger.WarnContext(ctx, "match notes summary failed",
			slog.Int("match_id", matchID),
			slog.Any("error", err),
		)
		enriched[models.ExtraAISummaryKey] = summary.FailureSentinel
		return enriched
	}
	enriched[models.ExtraAISummaryKey] = text
	return enriched
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapMatchError(err, id)
	}
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return s.mapMatchError(err, id)
	}
	s.publisher.PublishMatch(id, match.GameID, feed.MessageMatchDeleted, map[string]int{"id": id})
	return nil
}

func (s *matchService) GetMatchPlayers(ctx context.Context, id int) ([]models.MatchParticipantDetail, error) {
	if _, err := s.matchRepo.GetByID(ctx, id); err != nil {
		return nil, s.mapMatchError(err, id)
	}
	players, err := s.participantRepo.ListDetailed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list players of match %d: %w", id, err)
	}
	return players, nil
}

// publishFixture рассылает актуальную карточку матча. Ошибки только логируются.
func (s *matchService) publishFixture(ctx context.Context, matchID, gameID int) {
	fixture, err := s.fixtures.GetFixture(ctx, matchID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load fixture for broadcast", slog.Int("match_id", matchID), slog.Any("error", err))
		return
	}
	s.publisher.PublishMatch(matchID, gameID, feed.MessageMatchUpdated, fixture)
}

func (s *matchService) mapMatchError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrMatchReferenceInvalid):
		return ErrInvalidReference
	}
	return fmt.Errorf("match operation failed (id: %d): %w", id, err)
}
