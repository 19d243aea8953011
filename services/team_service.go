package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
	"github.com/Dosada05/champion-league/storage"
)

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context, filter TeamFilter, page Pagination) ([]models.Team, error)
	ListTeamsWithDetails(ctx context.Context, filter TeamFilter, page Pagination) ([]models.TeamWithDetails, error)
	UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	UploadTeamLogo(ctx context.Context, id int, upload ImageUpload) (*models.Team, error)
}

type TeamFilter struct {
	FranchiseID *int
	GameID      *int
}

type CreateTeamInput struct {
	Name        string           `json:"name"`
	FranchiseID int              `json:"franchise_id"`
	GameID      int              `json:"game_id"`
	LogoPath    *string          `json:"logo_path"`
	ExtraData   models.ExtraData `json:"extra_data"`
}

type UpdateTeamInput struct {
	Name        *string          `json:"name"`
	FranchiseID *int             `json:"franchise_id"`
	GameID      *int             `json:"game_id"`
	LogoPath    *string          `json:"logo_path"`
	ExtraData   models.ExtraData `json:"extra_data"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
	store    storage.BlobStore
	logger   *slog.Logger
}

func NewTeamService(teamRepo repositories.TeamRepository, store storage.BlobStore, logger *slog.Logger) TeamService {
	return &teamService{teamRepo: teamRepo, store: store, logger: logger}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	name, err := trimmedName(input.Name)
	if err != nil {
		return nil, err
	}
	if input.FranchiseID <= 0 || input.GameID <= 0 {
		return nil, ErrInvalidReference
	}

	team := &models.Team{
		Name:        name,
		FranchiseID: input.FranchiseID,
		GameID:      input.GameID,
		LogoPath:    input.LogoPath,
		ExtraData:   input.ExtraData,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, s.mapTeamError(err, 0)
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapTeamError(err, id)
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context, filter TeamFilter, page Pagination) ([]models.Team, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.List(ctx, repositories.ListTeamsFilter{
		FranchiseID: filter.FranchiseID,
		GameID:      filter.GameID,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) ListTeamsWithDetails(ctx context.Context, filter TeamFilter, page Pagination) ([]models.TeamWithDetails, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.ListWithDetails(ctx, repositories.ListTeamsFilter{
		FranchiseID: filter.FranchiseID,
		GameID:      filter.GameID,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams with details: %w", err)
	}
	return teams, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error) {
	name, err := optionalName(input.Name)
	if err != nil {
		return nil, err
	}
	team, err := s.teamRepo.Update(ctx, id, models.TeamPatch{
		Name:        name,
		FranchiseID: input.FranchiseID,
		GameID:      input.GameID,
		LogoPath:    input.LogoPath,
		ExtraData:   input.ExtraData,
	})
	if err != nil {
		return nil, s.mapTeamError(err, id)
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapTeamError(err, id)
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return s.mapTeamError(err, id)
	}
	discardImage(ctx, s.store, s.logger, team.LogoPath)
	return nil
}

func (s *teamService) UploadTeamLogo(ctx context.Context, id int, upload ImageUpload) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapTeamError(err, id)
	}

	var updated *models.Team
	err = replaceImage(ctx, s.store, s.logger, storage.FolderTeams, upload, team.LogoPath,
		func(ctx context.Context, locator string) error {
			var updErr error
			updated, updErr = s.teamRepo.Update(ctx, id, models.TeamPatch{LogoPath: &locator})
			return updErr
		})
	if err != nil {
		return nil, s.mapTeamError(err, id)
	}
	return updated, nil
}

func (s *teamService) mapTeamError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrTeamNotFound):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrTeamInUse):
		return ErrTeamInUse
	case errors.Is(err, repositories.ErrTeamReferenceInvalid):
		return ErrInvalidReference
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrStorageFailed):
		return err
	}
	return fmt.Errorf("team operation failed (id: %d): %w", id, err)
}
