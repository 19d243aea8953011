package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorePutListDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	locator, err := store.Put(ctx, FolderGallery, "Final.JPG", "image/jpeg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !strings.HasPrefix(locator, "/images/gallery/") || !strings.HasSuffix(locator, ".jpg") {
		t.Errorf("locator = %q, want /images/gallery/<uuid>.jpg", locator)
	}

	data, err := os.ReadFile(filepath.Join(store.Root(), strings.TrimPrefix(locator, PublicPrefix)))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content = %q", data)
	}

	if _, err := store.Put(ctx, FolderPlayers, "avatar.png", "image/png", strings.NewReader("png")); err != nil {
		t.Fatalf("Put(players) error = %v", err)
	}

	listed, err := store.List(ctx, FolderGallery+"/")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed) != 1 || listed[0] != locator {
		t.Errorf("List(gallery/) = %v, want [%s]", listed, locator)
	}

	if err := store.Delete(ctx, locator); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, locator); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("second Delete() error = %v, want ErrObjectNotFound", err)
	}
}

func TestLocalStoreRejectsForeignLocators(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	for _, locator := range []string{
		"https://cdn.example.com/a.png",
		"/images/../secret.txt",
		"/images/",
		"s3://bucket/games/a.png",
	} {
		if err := store.Delete(context.Background(), locator); !errors.Is(err, ErrInvalidLocator) {
			t.Errorf("Delete(%q) error = %v, want ErrInvalidLocator", locator, err)
		}
		if IsManaged(store, locator) {
			t.Errorf("IsManaged(%q) = true, want false", locator)
		}
	}
}

func TestNewKey(t *testing.T) {
	a := NewKey(FolderTeams, "logo.SVG")
	b := NewKey(FolderTeams, "logo.SVG")
	if a == b {
		t.Error("NewKey returned the same key twice")
	}
	if !strings.HasPrefix(a, "teams/") || !strings.HasSuffix(a, ".svg") {
		t.Errorf("NewKey = %q, want teams/<uuid>.svg", a)
	}
}

func TestS3StoreLocators(t *testing.T) {
	store := NewS3StoreWithClient(nil, "league")

	key, err := store.keyFromLocator("s3://league/gallery/x.png")
	if err != nil || key != "gallery/x.png" {
		t.Errorf("keyFromLocator = %q, %v", key, err)
	}
	if _, err := store.keyFromLocator("s3://other/gallery/x.png"); !errors.Is(err, ErrInvalidLocator) {
		t.Errorf("foreign bucket error = %v, want ErrInvalidLocator", err)
	}
	if !IsManaged(store, store.locator("games/a.png")) {
		t.Error("IsManaged should accept own locators")
	}
}
