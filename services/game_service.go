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

type GameService interface {
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	GetGameByID(ctx context.Context, id int) (*models.Game, error)
	ListGames(ctx context.Context, page Pagination) ([]models.Game, error)
	UpdateGame(ctx context.Context, id int, input UpdateGameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, id int) error
	UploadGameImage(ctx context.Context, id int, upload ImageUpload) (*models.Game, error)
}

type CreateGameInput struct {
	Name          string               `json:"name"`
	Description   *string              `json:"description"`
	WinningPoints *int                 `json:"winning_points"`
	Category      *models.GameCategory `json:"category"`
	ImagePath     *string              `json:"image_path"`
	ExtraData     models.ExtraData     `json:"extra_data"`
}

// UpdateGameInput: nil-поля не меняются.
type UpdateGameInput struct {
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	WinningPoints *int                 `json:"winning_points"`
	Category      *models.GameCategory `json:"category"`
	ImagePath     *string              `json:"image_path"`
	ExtraData     models.ExtraData     `json:"extra_data"`
}

type gameService struct {
	gameRepo         repositories.GameRepository
	store            storage.BlobStore
	defaultWinPoints int
	logger           *slog.Logger
}

func NewGameService(gameRepo repositories.GameRepository, store storage.BlobStore, defaultWinPoints int, logger *slog.Logger) GameService {
	return &gameService{
		gameRepo:         gameRepo,
		store:            store,
		defaultWinPoints: defaultWinPoints,
		logger:           logger,
	}
}

func validateGameFields(points *int, category *models.GameCategory) error {
	if points != nil && *points < 0 {
		return ErrInvalidWinningPoints
	}
	if category != nil && !category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}

func (s *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	name, err := trimmedName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateGameFields(input.WinningPoints, input.Category); err != nil {
		return nil, err
	}

	game := &models.Game{
		Name:          name,
		Description:   input.Description,
		WinningPoints: s.defaultWinPoints,
		Category:      models.GameCategoryIndividual,
		ImagePath:     input.ImagePath,
		ExtraData:     input.ExtraData,
	}
	if input.WinningPoints != nil {
		game.WinningPoints = *input.WinningPoints
	}
	if input.Category != nil {
		game.Category = *input.Category
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameNameConflict) {
			return nil, ErrGameNameConflict
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (s *gameService) GetGameByID(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by id %d: %w", id, err)
	}
	return game, nil
}

func (s *gameService) ListGames(ctx context.Context, page Pagination) ([]models.Game, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	games, err := s.gameRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (s *gameService) UpdateGame(ctx context.Context, id int, input UpdateGameInput) (*models.Game, error) {
	name, err := optionalName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateGameFields(input.WinningPoints, input.Category); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.Update(ctx, id, models.GamePatch{
		Name:          name,
		Description:   input.Description,
		WinningPoints: input.WinningPoints,
		Category:      input.Category,
		ImagePath:     input.ImagePath,
		ExtraData:     input.ExtraData,
	})
	if err != nil {
		return nil, s.mapGameError(err, id)
	}
	return game, nil
}

func (s *gameService) DeleteGame(ctx context.Context, id int) error {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapGameError(err, id)
	}
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		return s.mapGameError(err, id)
	}
	discardImage(ctx, s.store, s.logger, game.ImagePath)
	return nil
}

func (s *gameService) UploadGameImage(ctx context.Context, id int, upload ImageUpload) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapGameError(err, id)
	}

	var updated *models.Game
	err = replaceImage(ctx, s.store, s.logger, storage.FolderGames, upload, game.ImagePath,
		func(ctx context.Context, locator string) error {
			var updErr error
			updated, updErr = s.gameRepo.Update(ctx, id, models.GamePatch{ImagePath: &locator})
			return updErr
		})
	if err != nil {
		return nil, s.mapGameError(err, id)
	}
	return updated, nil
}

func (s *gameService) mapGameError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrGameNotFound):
		return ErrGameNotFound
	case errors.Is(err, repositories.ErrGameNameConflict):
		return ErrGameNameConflict
	case errors.Is(err, repositories.ErrGameInUse):
		return ErrGameInUse
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrStorageFailed):
		return err
	}
	return fmt.Errorf("game operation failed (id: %d): %w", id, err)
}
