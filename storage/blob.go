// Package storage хранит загруженные изображения лиги: в S3-совместимом
// бакете (AWS S3, Cloudflare R2, MinIO) или в локальной директории.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Логические папки хранилища.
const (
	FolderGames      = "games"
	FolderFranchises = "franchises"
	FolderPlayers    = "players"
	FolderTeams      = "teams"
	FolderGallery    = "gallery"
)

var (
	ErrInvalidLocator = errors.New("invalid storage locator")
	ErrObjectNotFound = errors.New("stored object not found")
)

// BlobStore хранит файлы с адресацией по ключу. Put возвращает
// локатор, по которому объект потом удаляется или отдаётся клиенту.
type BlobStore interface {
	Put(ctx context.Context, folder, filename, contentType string, reader io.Reader) (string, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, locator string) error
}

// NewKey строит уникальный ключ "<folder>/<uuid><ext>", сохраняя расширение исходного файла.
func NewKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(folder, uuid.NewString()+ext)
}

// IsManaged сообщает, принадлежит ли локатор этому хранилищу.
// Пути, заданные вручную (например внешние URL), не удаляются.
func IsManaged(store BlobStore, locator string) bool {
	owner, ok := store.(interface{ Owns(locator string) bool })
	return ok && owner.Owns(locator)
}
