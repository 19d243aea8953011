package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/mail"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/storage"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// Pagination задаёт skip/limit. Limit == nil означает DefaultPageLimit.
type Pagination struct {
	Skip  int
	Limit *int
}

// normalize проверяет skip и limit и ограничивает limit сверху MaxPageLimit.
// limit = 0 даёт пустую страницу.
func (p Pagination) normalize() (offset, limit int, err error) {
	if p.Skip < 0 {
		return 0, 0, ErrInvalidPagination
	}
	limit = DefaultPageLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	if limit < 0 {
		return 0, 0, ErrInvalidPagination
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return p.Skip, limit, nil
}

func trimmedName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// optionalName проверяет имя из частичного обновления: nil допустим, пустая строка нет.
func optionalName(name *string) (*string, error) {
	if name == nil {
		return nil, nil
	}
	trimmed, err := trimmedName(*name)
	if err != nil {
		return nil, err
	}
	return &trimmed, nil
}

func validateEmail(email *string) error {
	if email == nil {
		return nil
	}
	addr, err := mail.ParseAddress(*email)
	if err != nil || addr.Address != *email {
		return ErrInvalidEmail
	}
	return nil
}

func validateMatchDate(date *string) error {
	if date == nil {
		return nil
	}
	if _, err := time.Parse(models.DateLayout, *date); err != nil {
		return ErrInvalidMatchDate
	}
	return nil
}

func validateMatchTime(clock *string) error {
	if clock == nil {
		return nil
	}
	if _, err := time.Parse(models.TimeLayout, *clock); err != nil {
		return ErrInvalidMatchTime
	}
	return nil
}

// ImageUpload описывает загружаемый файл изображения.
type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

func imageExtension(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/svg+xml":
		return ".svg", nil
	}
	return "", ErrInvalidImageType
}

// putImage проверяет тип файла и сохраняет его в папку хранилища.
func putImage(ctx context.Context, store storage.BlobStore, folder string, upload ImageUpload) (string, error) {
	if upload.Reader == nil {
		return "", ErrImageRequired
	}
	ext, err := imageExtension(strings.ToLower(strings.TrimSpace(upload.ContentType)))
	if err != nil {
		return "", err
	}
	filename := upload.Filename
	if filepath.Ext(filename) == "" {
		filename += ext
	}
	locator, err := store.Put(ctx, folder, filename, upload.ContentType, upload.Reader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	return locator, nil
}

// discardImage удаляет файл из хранилища без возврата ошибки: неудача только логируется.
func discardImage(ctx context.Context, store storage.BlobStore, logger *slog.Logger, locator *string) {
	if locator == nil || *locator == "" || !storage.IsManaged(store, *locator) {
		return
	}
	if err := store.Delete(ctx, *locator); err != nil {
		logger.WarnContext(ctx, "failed to delete stored image", slog.String("locator", *locator), slog.Any("error", err))
	}
}

// replaceImage сохраняет новый файл, записывает его путь через save и удаляет
// предыдущий файл. Если save не удался, новый файл удаляется.
func replaceImage(
	ctx context.Context,
	store storage.BlobStore,
	logger *slog.Logger,
	folder string,
	upload ImageUpload,
	previous *string,
	save func(ctx context.Context, locator string) error,
) error {
	locator, err := putImage(ctx, store, folder, upload)
	if err != nil {
		return err
	}
	if err := save(ctx, locator); err != nil {
		discardImage(ctx, store, logger, &locator)
		return err
	}
	if previous != nil && *previous != locator {
		discardImage(ctx, store, logger, previous)
	}
	return nil
}
