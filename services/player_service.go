package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
	"github.com/Dosada05/champion-league/storage"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	ListPlayers(ctx context.Context, franchiseID *int, page Pagination) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
	GetPlayerTeams(ctx context.Context, id int) ([]models.PlayerTeam, error)
	UploadPlayerImage(ctx context.Context, id int, upload ImageUpload) (*models.Player, error)
}

// total_points не задаётся клиентом: он пересчитывается по результатам матчей.
type CreatePlayerInput struct {
	Name             string           `json:"name"`
	FranchiseID      *int             `json:"franchise_id"`
	Email            *string          `json:"email"`
	ProfileImagePath *string          `json:"profile_image_path"`
	ExtraData        models.ExtraData `json:"extra_data"`
}

type UpdatePlayerInput struct {
	Name             *string          `json:"name"`
	FranchiseID      *int             `json:"franchise_id"`
	Email            *string          `json:"email"`
	ProfileImagePath *string          `json:"profile_image_path"`
	ExtraData        models.ExtraData `json:"extra_data"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	store      storage.BlobStore
	logger     *slog.Logger
}

func NewPlayerService(playerRepo repositories.PlayerRepository, store storage.BlobStore, logger *slog.Logger) PlayerService {
	return &playerService{playerRepo: playerRepo, store: store, logger: logger}
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	return &trimmed
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	name, err := trimmedName(input.Name)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	player := &models.Player{
		Name:             name,
		FranchiseID:      input.FranchiseID,
		Email:            email,
		ProfileImagePath: input.ProfileImagePath,
		ExtraData:        input.ExtraData,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, s.mapPlayerError(err, 0)
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapPlayerError(err, id)
	}
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context, franchiseID *int, page Pagination) ([]models.Player, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	players, err := s.playerRepo.List(ctx, repositories.ListPlayersFilter{
		FranchiseID: franchiseID,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error) {
	name, err := optionalName(input.Name)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	player, err := s.playerRepo.Update(ctx, id, models.PlayerPatch{
		Name:             name,
		FranchiseID:      input.FranchiseID,
		Email:            email,
		ProfileImagePath: input.ProfileImagePath,
		ExtraData:        input.ExtraData,
	})
	if err != nil {
		return nil, s.mapPlayerError(err, id)
	}
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapPlayerError(err, id)
	}
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return s.mapPlayerError(err, id)
	}
	discardImage(ctx, s.store, s.logger, player.ProfileImagePath)
	return nil
}

func (s *playerService) GetPlayerTeams(ctx context.Context, id int) ([]models.PlayerTeam, error) {
	if _, err := s.playerRepo.GetByID(ctx, id); err != nil {
		return nil, s.mapPlayerError(err, id)
	}
	teams, err := s.playerRepo.ListTeams(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of player %d: %w", id, err)
	}
	return teams, nil
}

func (s *playerService) UploadPlayerImage(ctx context.Context, id int, upload ImageUpload) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapPlayerError(err, id)
	}

	var updated *models.Player
	err = replaceImage(ctx, s.store, s.logger, storage.FolderPlayers, upload, player.ProfileImagePath,
		func(ctx context.Context, locator string) error {
			var updErr error
			updated, updErr = s.playerRepo.Update(ctx, id, models.PlayerPatch{ProfileImagePath: &locator})
			return updErr
		})
	if err != nil {
		return nil, s.mapPlayerError(err, id)
	}
	return updated, nil
}

func (s *playerService) mapPlayerError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, repositories.ErrPlayerFranchiseInvalid):
		return ErrInvalidReference
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrStorageFailed):
		return err
	}
	return fmt.Errorf("player operation failed (id: %d): %w", id, err)
}
