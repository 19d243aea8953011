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

type FranchiseService interface {
	CreateFranchise(ctx context.Context, input CreateFranchiseInput) (*models.Franchise, error)
	GetFranchiseByID(ctx context.Context, id int) (*models.Franchise, error)
	ListFranchises(ctx context.Context, page Pagination) ([]models.Franchise, error)
	UpdateFranchise(ctx context.Context, id int, input UpdateFranchiseInput) (*models.Franchise, error)
	DeleteFranchise(ctx context.Context, id int) error
	UploadFranchiseLogo(ctx context.Context, id int, upload ImageUpload) (*models.Franchise, error)
}

type CreateFranchiseInput struct {
	Name          string           `json:"name"`
	FranchiseCode *string          `json:"franchise_code"`
	LogoPath      *string          `json:"logo_path"`
	ExtraData     models.ExtraData `json:"extra_data"`
}

type UpdateFranchiseInput struct {
	Name          *string          `json:"name"`
	FranchiseCode *string          `json:"franchise_code"`
	LogoPath      *string          `json:"logo_path"`
	ExtraData     models.ExtraData `json:"extra_data"`
}

type franchiseService struct {
	franchiseRepo repositories.FranchiseRepository
	store         storage.BlobStore
	logger        *slog.Logger
}

func NewFranchiseService(franchiseRepo repositories.FranchiseRepository, store storage.BlobStore, logger *slog.Logger) FranchiseService {
	return &franchiseService{franchiseRepo: franchiseRepo, store: store, logger: logger}
}

func (s *franchiseService) CreateFranchise(ctx context.Context, input CreateFranchiseInput) (*models.Franchise, error) {
	name, err := trimmedName(input.Name)
	if err != nil {
		return nil, err
	}

	franchise := &models.Franchise{
		Name:          name,
		FranchiseCode: input.FranchiseCode,
		LogoPath:      input.LogoPath,
		ExtraData:     input.ExtraData,
	}
	if err := s.franchiseRepo.Create(ctx, franchise); err != nil {
		return nil, s.mapFranchiseError(err, 0)
	}
	return franchise, nil
}

func (s *franchiseService) GetFranchiseByID(ctx context.Context, id int) (*models.Franchise, error) {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapFranchiseError(err, id)
	}
	return franchise, nil
}

func (s *franchiseService) ListFranchises(ctx context.Context, page Pagination) ([]models.Franchise, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	franchises, err := s.franchiseRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list franchises: %w", err)
	}
	return franchises, nil
}

func (s *franchiseService) UpdateFranchise(ctx context.Context, id int, input UpdateFranchiseInput) (*models.Franchise, error) {
	name, err := optionalName(input.Name)
	if err != nil {
		return nil, err
	}
	franchise, err := s.franchiseRepo.Update(ctx, id, models.FranchisePatch{
		Name:          name,
		FranchiseCode: input.FranchiseCode,
		LogoPath:      input.LogoPath,
		ExtraData:     input.ExtraData,
	})
	if err != nil {
		return nil, s.mapFranchiseError(err, id)
	}
	return franchise, nil
}

func (s *franchiseService) DeleteFranchise(ctx context.Context, id int) error {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapFranchiseError(err, id)
	}
	if err := s.franchiseRepo.Delete(ctx, id); err != nil {
		return s.mapFranchiseError(err, id)
	}
	discardImage(ctx, s.store, s.logger, franchise.LogoPath)
	return nil
}

func (s *franchiseService) UploadFranchiseLogo(ctx context.Context, id int, upload ImageUpload) (*models.Franchise, error) {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapFranchiseError(err, id)
	}

	var updated *models.Franchise
	err = replaceImage(ctx, s.store, s.logger, storage.FolderFranchises, upload, franchise.LogoPath,
		func(ctx context.Context, locator string) error {
			var updErr error
			updated, updErr = s.franchiseRepo.Update(ctx, id, models.FranchisePatch{LogoPath: &locator})
			return updErr
		})
	if err != nil {
		return nil, s.mapFranchiseError(err, id)
	}
	return updated, nil
}

func (s *franchiseService) mapFranchiseError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrFranchiseNotFound):
		return ErrFranchiseNotFound
	case errors.Is(err, repositories.ErrFranchiseNameConflict):
		return ErrFranchiseNameConflict
	case errors.Is(err, repositories.ErrFranchiseCodeConflict):
		return ErrFranchiseCodeConflict
	case errors.Is(err, repositories.ErrFranchiseInUse):
		return ErrFranchiseInUse
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrStorageFailed):
		return err
	}
	return fmt.Errorf("franchise operation failed (id: %d): %w", id, err)
}
