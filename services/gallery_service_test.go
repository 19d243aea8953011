package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
)

func pngUpload() ImageUpload {
	return ImageUpload{Filename: "final.png", ContentType: "image/png", Reader: strings.NewReader("png")}
}

func TestGalleryServiceUploadAndDelete(t *testing.T) {
	repo := &fakeGalleryRepo{items: map[int]*models.GalleryItem{}}
	store := newMemStore()
	svc := NewGalleryService(repo, store, discardLogger())
	ctx := context.Background()

	item, err := svc.UploadItem(ctx, CreateGalleryItemInput{Title: strPtr("Final"), MatchID: intPtr(1), Image: pngUpload()})
	if err != nil {
		t.Fatalf("UploadItem() error = %v", err)
	}
	if !strings.HasPrefix(item.ImagePath, "mem://gallery/") || !strings.HasSuffix(item.ImagePath, ".png") {
		t.Errorf("ImagePath = %q, want gallery/<uuid>.png", item.ImagePath)
	}

	stored, err := svc.ListStoredImages(ctx)
	if err != nil || len(stored) != 1 || stored[0] != item.ImagePath {
		t.Fatalf("ListStoredImages() = %v, %v; want [%s]", stored, err, item.ImagePath)
	}

	if err := svc.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}
	if _, err := svc.GetItemByID(ctx, item.ID); !errors.Is(err, ErrGalleryItemNotFound) {
		t.Errorf("GetItemByID(deleted) error = %v, want ErrGalleryItemNotFound", err)
	}
	if len(store.objects) != 0 {
		t.Errorf("blob left after delete: %v", store.objects)
	}
}

func TestGalleryServiceUploadRollsBackBlob(t *testing.T) {
	repo := &fakeGalleryRepo{items: map[int]*models.GalleryItem{}, createErr: repositories.ErrGalleryMatchInvalid}
	store := newMemStore()
	svc := NewGalleryService(repo, store, discardLogger())

	_, err := svc.UploadItem(context.Background(), CreateGalleryItemInput{MatchID: intPtr(404), Image: pngUpload()})
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("UploadItem() error = %v, want ErrInvalidReference", err)
	}
	if len(store.objects) != 0 || len(store.deleted) != 1 {
		t.Errorf("objects = %v, deleted = %v; want uploaded blob removed", store.objects, store.deleted)
	}
}

func TestGalleryServiceDeleteIgnoresBlobFailure(t *testing.T) {
	repo := &fakeGalleryRepo{items: map[int]*models.GalleryItem{}}
	store := newMemStore()
	svc := NewGalleryService(repo, store, discardLogger())
	ctx := context.Background()

	item, err := svc.UploadItem(ctx, CreateGalleryItemInput{Image: pngUpload()})
	if err != nil {
		t.Fatalf("UploadItem() error = %v", err)
	}
	store.deleteErr = errors.New("bucket unavailable")

	if err := svc.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem() error = %v, want nil when only the blob delete fails", err)
	}
	if _, ok := repo.items[item.ID]; ok {
		t.Error("gallery row should be deleted")
	}
}

func TestGalleryServiceRequiresImage(t *testing.T) {
	svc := NewGalleryService(&fakeGalleryRepo{items: map[int]*models.GalleryItem{}}, newMemStore(), discardLogger())
	if _, err := svc.UploadItem(context.Background(), CreateGalleryItemInput{}); !errors.Is(err, ErrImageRequired) {
		t.Fatalf("UploadItem() error = %v, want ErrImageRequired", err)
	}
}
