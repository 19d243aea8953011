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

type GalleryService interface {
	UploadItem(ctx context.Context, input CreateGalleryItemInput) (*models.GalleryItem, error)
	GetItemByID(ctx context.Context, id int) (*models.GalleryItem, error)
	ListItems(ctx context.Context, matchID *int, page Pagination) ([]models.GalleryItem, error)
	DeleteItem(ctx context.Context, id int) error
	ListStoredImages(ctx context.Context) ([]string, error)
}

type CreateGalleryItemInput struct {
	Title       *string
	Description *string
	MatchID     *int
	ExtraData   models.ExtraData
	Image       ImageUpload
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
	store       storage.BlobStore
	logger      *slog.Logger
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, store storage.BlobStore, logger *slog.Logger) GalleryService {
	return &galleryService{galleryRepo: galleryRepo, store: store, logger: logger}
}

// UploadItem сначала сохраняет файл, затем запись. Если запись не удалась,
// файл удаляется.
func (s *galleryService) UploadItem(ctx context.Context, input CreateGalleryItemInput) (*models.GalleryItem, error) {
	locator, err := putImage(ctx, s.store, storage.FolderGallery, input.Image)
	if err != nil {
		return nil, err
	}

	item := &models.GalleryItem{
		Title:       input.Title,
		Description: input.Description,
		ImagePath:   locator,
		MatchID:     input.MatchID,
		ExtraData:   input.ExtraData,
	}
	if err := s.galleryRepo.Create(ctx, item); err != nil {
		discardImage(ctx, s.store, s.logger, &locator)
		return nil, s.mapGalleryError(err, 0)
	}
	return item, nil
}

func (s *galleryService) GetItemByID(ctx context.Context, id int) (*models.GalleryItem, error) {
	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapGalleryError(err, id)
	}
	return item, nil
}

func (s *galleryService) ListItems(ctx context.Context, matchID *int, page Pagination) ([]models.GalleryItem, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	items, err := s.galleryRepo.List(ctx, repositories.ListGalleryFilter{MatchID: matchID, Offset: offset, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	return items, nil
}

func (s *galleryService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.galleryRepo.Delete(ctx, id)
	if err != nil {
		return s.mapGalleryError(err, id)
	}
	discardImage(ctx, s.store, s.logger, &item.ImagePath)
	return nil
}

func (s *galleryService) ListStoredImages(ctx context.Context) ([]string, error) {
	locators, err := s.store.List(ctx, storage.FolderGallery+"/")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	return locators, nil
}

func (s *galleryService) mapGalleryError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrGalleryItemNotFound):
		return ErrGalleryItemNotFound
	case errors.Is(err, repositories.ErrGalleryMatchInvalid):
		return ErrInvalidReference
	}
	return fmt.Errorf("gallery operation failed (id: %d): %w", id, err)
}
