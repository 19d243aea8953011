package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dosada05/champion-league/models"
)

func TestGameServiceCreate(t *testing.T) {
	repo := newFakeGameRepo()
	svc := NewGameService(repo, newMemStore(), 10, discardLogger())
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, CreateGameInput{Name: "  Chess  "})
	if err != nil {
		t.Fatalf("CreateGame() error = %v", err)
	}
	if game.ID == 0 || game.Name != "Chess" {
		t.Errorf("CreateGame() = %+v, want trimmed name and assigned id", game)
	}
	if game.WinningPoints != 10 || game.Category != models.GameCategoryIndividual {
		t.Errorf("defaults = (%d, %s), want (10, individual)", game.WinningPoints, game.Category)
	}

	if _, err := svc.CreateGame(ctx, CreateGameInput{Name: "Chess"}); !errors.Is(err, ErrGameNameConflict) {
		t.Fatalf("duplicate CreateGame() error = %v, want ErrGameNameConflict", err)
	}
	if !errors.Is(ErrGameNameConflict, ErrConflict) {
		t.Error("ErrGameNameConflict should be a conflict")
	}

	invalid := []CreateGameInput{
		{Name: "   "},
		{Name: "Pool", WinningPoints: intPtr(-1)},
		{Name: "Pool", Category: func() *models.GameCategory { c := models.GameCategory("solo"); return &c }()},
	}
	for _, in := range invalid {
		if _, err := svc.CreateGame(ctx, in); !errors.Is(err, ErrValidationFailed) {
			t.Errorf("CreateGame(%+v) error = %v, want validation failure", in, err)
		}
	}
	if games, _ := repo.List(ctx, 0, 100); len(games) != 1 {
		t.Errorf("stored games = %d, want 1", len(games))
	}
}

func TestGameServiceUpdatePartial(t *testing.T) {
	repo := newFakeGameRepo(models.Game{
		ID:            1,
		Name:          "Chess",
		Description:   strPtr("Board game"),
		WinningPoints: 10,
		Category:      models.GameCategoryIndividual,
	})
	svc := NewGameService(repo, newMemStore(), 10, discardLogger())

	game, err := svc.UpdateGame(context.Background(), 1, UpdateGameInput{WinningPoints: intPtr(15)})
	if err != nil {
		t.Fatalf("UpdateGame() error = %v", err)
	}
	if game.WinningPoints != 15 {
		t.Errorf("WinningPoints = %d, want 15", game.WinningPoints)
	}
	if game.Name != "Chess" || game.Description == nil || *game.Description != "Board game" {
		t.Errorf("untouched fields changed: %+v", game)
	}

	if _, err := svc.UpdateGame(context.Background(), 99, UpdateGameInput{WinningPoints: intPtr(1)}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("UpdateGame(missing) error = %v, want ErrGameNotFound", err)
	}
	if _, err := svc.UpdateGame(context.Background(), 1, UpdateGameInput{Name: strPtr("")}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("UpdateGame(empty name) error = %v, want ErrNameRequired", err)
	}
}

func TestGameServiceDelete(t *testing.T) {
	repo := newFakeGameRepo(models.Game{ID: 1, Name: "Chess"}, models.Game{ID: 2, Name: "Pool"})
	repo.inUse[2] = true
	svc := NewGameService(repo, newMemStore(), 10, discardLogger())
	ctx := context.Background()

	if err := svc.DeleteGame(ctx, 99); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("DeleteGame(missing) error = %v, want ErrGameNotFound", err)
	}
	if err := svc.DeleteGame(ctx, 2); !errors.Is(err, ErrGameInUse) {
		t.Fatalf("DeleteGame(in use) error = %v, want ErrGameInUse", err)
	}
	if err := svc.DeleteGame(ctx, 1); err != nil {
		t.Fatalf("DeleteGame() error = %v", err)
	}
	if _, err := svc.GetGameByID(ctx, 1); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("GetGameByID(deleted) error = %v, want ErrGameNotFound", err)
	}
	if ErrGameNotFound.Error() != "Game not found" {
		t.Errorf("message = %q, want %q", ErrGameNotFound.Error(), "Game not found")
	}
}

func TestGameServiceList(t *testing.T) {
	repo := newFakeGameRepo(models.Game{ID: 1, Name: "Chess"}, models.Game{ID: 2, Name: "Pool"}, models.Game{ID: 3, Name: "Carom"})
	svc := NewGameService(repo, newMemStore(), 10, discardLogger())

	games, err := svc.ListGames(context.Background(), Pagination{Skip: 1, Limit: intPtr(1)})
	if err != nil {
		t.Fatalf("ListGames() error = %v", err)
	}
	if len(games) != 1 || games[0].ID != 2 {
		t.Errorf("ListGames() = %+v, want only game 2", games)
	}
	if _, err := svc.ListGames(context.Background(), Pagination{Skip: -5}); !errors.Is(err, ErrInvalidPagination) {
		t.Errorf("ListGames(negative skip) error = %v, want ErrInvalidPagination", err)
	}

	empty, err := svc.ListGames(context.Background(), Pagination{Limit: intPtr(0)})
	if err != nil {
		t.Fatalf("ListGames(limit=0) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListGames(limit=0) = %+v, want empty page", empty)
	}
}

func TestGameServiceUploadImage(t *testing.T) {
	repo := newFakeGameRepo(models.Game{ID: 1, Name: "Chess"})
	store := newMemStore()
	svc := NewGameService(repo, store, 10, discardLogger())
	ctx := context.Background()

	first, err := svc.UploadGameImage(ctx, 1, ImageUpload{Filename: "board.png", ContentType: "image/png", Reader: bytes.NewReader([]byte("png"))})
	if err != nil {
		t.Fatalf("UploadGameImage() error = %v", err)
	}
	if first.ImagePath == nil || !strings.HasPrefix(*first.ImagePath, "mem://games/") {
		t.Fatalf("ImagePath = %v, want a games/ locator", first.ImagePath)
	}

	second, err := svc.UploadGameImage(ctx, 1, ImageUpload{Filename: "board2.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpg")})
	if err != nil {
		t.Fatalf("UploadGameImage() second error = %v", err)
	}
	if *second.ImagePath == *first.ImagePath {
		t.Fatal("second upload should produce a new locator")
	}
	if len(store.deleted) != 1 || store.deleted[0] != *first.ImagePath {
		t.Errorf("deleted = %v, want previous image %s", store.deleted, *first.ImagePath)
	}

	_, err = svc.UploadGameImage(ctx, 1, ImageUpload{Filename: "notes.txt", ContentType: "text/plain", Reader: strings.NewReader("x")})
	if !errors.Is(err, ErrInvalidImageType) {
		t.Errorf("UploadGameImage(text) error = %v, want ErrInvalidImageType", err)
	}
	_, err = svc.UploadGameImage(ctx, 7, ImageUpload{Filename: "a.png", ContentType: "image/png", Reader: strings.NewReader("x")})
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("UploadGameImage(missing) error = %v, want ErrGameNotFound", err)
	}
}
