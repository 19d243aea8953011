package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// PublicPrefix задаёт URL-префикс, под которым API отдаёт файлы LocalStore.
const PublicPrefix = "/images/"

// LocalStore хранит файлы в директории на диске; локаторы имеют вид /images/<key>.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Root возвращает директорию, которую нужно раздавать под PublicPrefix.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) pathFromLocator(locator string) (string, error) {
	if !strings.HasPrefix(locator, PublicPrefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocator, locator)
	}
	key := path.Clean(strings.TrimPrefix(locator, PublicPrefix))
	if key == "." || key == ".." || strings.HasPrefix(key, "../") || path.IsAbs(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocator, locator)
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

func (s *LocalStore) Owns(locator string) bool {
	_, err := s.pathFromLocator(locator)
	return err == nil
}

func (s *LocalStore) Put(ctx context.Context, folder, filename, contentType string, reader io.Reader) (string, error) {
	key := NewKey(folder, filename)
	target := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder for %s: %w", key, err)
	}
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create file for %s: %w", key, err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to write file for %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file for %s: %w", key, err)
	}
	return PublicPrefix + key, nil
}

func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	locators := make([]string, 0)
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			locators = append(locators, PublicPrefix+key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list images (prefix: %s): %w", prefix, err)
	}
	sort.Strings(locators)
	return locators, nil
}

func (s *LocalStore) Delete(ctx context.Context, locator string) error {
	target, err := s.pathFromLocator(locator)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, locator)
		}
		return fmt.Errorf("failed to delete %s: %w", locator, err)
	}
	return nil
}
