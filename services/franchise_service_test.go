package services

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
)

// memFranchiseRepo проверяет уникальность name и franchise_code так же,
// как constraint'ы таблицы franchises.
type memFranchiseRepo struct {
	mu         sync.Mutex
	franchises map[int]*models.Franchise
	nextID     int
	inUse      map[int]bool
}

func newMemFranchiseRepo(franchises ...models.Franchise) *memFranchiseRepo {
	r := &memFranchiseRepo{franchises: map[int]*models.Franchise{}, inUse: map[int]bool{}}
	for i := range franchises {
		f := franchises[i]
		r.franchises[f.ID] = &f
		if f.ID > r.nextID {
			r.nextID = f.ID
		}
	}
	return r
}

func (r *memFranchiseRepo) conflict(id int, name string, code *string) error {
	for otherID, other := range r.franchises {
		if otherID == id {
			continue
		}
		if other.Name == name {
			return repositories.ErrFranchiseNameConflict
		}
		if code != nil && other.FranchiseCode != nil && *other.FranchiseCode == *code {
			return repositories.ErrFranchiseCodeConflict
		}
	}
	return nil
}

func (r *memFranchiseRepo) Create(_ context.Context, f *models.Franchise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.conflict(0, f.Name, f.FranchiseCode); err != nil {
		return err
	}
	r.nextID++
	f.ID = r.nextID
	stored := *f
	r.franchises[f.ID] = &stored
	return nil
}

func (r *memFranchiseRepo) GetByID(_ context.Context, id int) (*models.Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.franchises[id]
	if !ok {
		return nil, repositories.ErrFranchiseNotFound
	}
	out := *f
	return &out, nil
}

func (r *memFranchiseRepo) List(_ context.Context, offset, limit int) ([]models.Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.franchises))
	for id := range r.franchises {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]models.Franchise, 0)
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		out = append(out, *r.franchises[id])
	}
	return out, nil
}

func (r *memFranchiseRepo) Update(_ context.Context, id int, patch models.FranchisePatch) (*models.Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.franchises[id]
	if !ok {
		return nil, repositories.ErrFranchiseNotFound
	}
	name := f.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	if err := r.conflict(id, name, patch.FranchiseCode); err != nil {
		return nil, err
	}
	f.Name = name
	if patch.FranchiseCode != nil {
		f.FranchiseCode = patch.FranchiseCode
	}
	if patch.LogoPath != nil {
		f.LogoPath = patch.LogoPath
	}
	if patch.ExtraData != nil {
		f.ExtraData = f.ExtraData.Merge(patch.ExtraData)
	}
	out := *f
	return &out, nil
}

func (r *memFranchiseRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.franchises[id]; !ok {
		return repositories.ErrFranchiseNotFound
	}
	if r.inUse[id] {
		return repositories.ErrFranchiseInUse
	}
	delete(r.franchises, id)
	return nil
}

func TestFranchiseServiceCreateUniqueness(t *testing.T) {
	repo := newMemFranchiseRepo(models.Franchise{ID: 1, Name: "Gotham", FranchiseCode: strPtr("GOT")})
	svc := NewFranchiseService(repo, newMemStore(), discardLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateFranchiseInput
		wantErr error
	}{
		{name: "new franchise", input: CreateFranchiseInput{Name: "Metropolis", FranchiseCode: strPtr("MET")}},
		{name: "duplicate name", input: CreateFranchiseInput{Name: "Gotham"}, wantErr: ErrFranchiseNameConflict},
		{name: "duplicate code", input: CreateFranchiseInput{Name: "Star City", FranchiseCode: strPtr("GOT")}, wantErr: ErrFranchiseCodeConflict},
		{name: "blank name", input: CreateFranchiseInput{Name: "  "}, wantErr: ErrNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := svc.CreateFranchise(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateFranchise() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && f.ID == 0 {
				t.Errorf("CreateFranchise() returned no id: %+v", f)
			}
		})
	}

	if !errors.Is(ErrFranchiseNameConflict, ErrConflict) || !errors.Is(ErrFranchiseCodeConflict, ErrConflict) {
		t.Error("franchise uniqueness errors should be conflicts")
	}
}

func TestFranchiseServiceUpdate(t *testing.T) {
	repo := newMemFranchiseRepo(
		models.Franchise{ID: 1, Name: "Gotham", FranchiseCode: strPtr("GOT"), LogoPath: strPtr("/images/franchises/bat.png")},
		models.Franchise{ID: 2, Name: "Metropolis", FranchiseCode: strPtr("MET")},
	)
	svc := NewFranchiseService(repo, newMemStore(), discardLogger())
	ctx := context.Background()

	f, err := svc.UpdateFranchise(ctx, 1, UpdateFranchiseInput{Name: strPtr("Gotham City")})
	if err != nil {
		t.Fatalf("UpdateFranchise() error = %v", err)
	}
	if f.Name != "Gotham City" || f.FranchiseCode == nil || *f.FranchiseCode != "GOT" || f.LogoPath == nil {
		t.Errorf("UpdateFranchise() = %+v, want only name changed", f)
	}

	tests := []struct {
		name    string
		id      int
		input   UpdateFranchiseInput
		wantErr error
	}{
		{name: "missing", id: 99, input: UpdateFranchiseInput{Name: strPtr("Nowhere")}, wantErr: ErrFranchiseNotFound},
		{name: "name taken", id: 1, input: UpdateFranchiseInput{Name: strPtr("Metropolis")}, wantErr: ErrFranchiseNameConflict},
		{name: "code taken", id: 1, input: UpdateFranchiseInput{FranchiseCode: strPtr("MET")}, wantErr: ErrFranchiseCodeConflict},
		{name: "empty name", id: 1, input: UpdateFranchiseInput{Name: strPtr("")}, wantErr: ErrNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.UpdateFranchise(ctx, tt.id, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateFranchise() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFranchiseServiceDelete(t *testing.T) {
	repo := newMemFranchiseRepo(models.Franchise{ID: 1, Name: "Gotham"}, models.Franchise{ID: 2, Name: "Metropolis"})
	repo.inUse[2] = true
	svc := NewFranchiseService(repo, newMemStore(), discardLogger())
	ctx := context.Background()

	if err := svc.DeleteFranchise(ctx, 99); !errors.Is(err, ErrFranchiseNotFound) {
		t.Fatalf("DeleteFranchise(missing) error = %v, want ErrFranchiseNotFound", err)
	}
	if err := svc.DeleteFranchise(ctx, 2); !errors.Is(err, ErrFranchiseInUse) {
		t.Fatalf("DeleteFranchise(in use) error = %v, want ErrFranchiseInUse", err)
	}
	if err := svc.DeleteFranchise(ctx, 1); err != nil {
		t.Fatalf("DeleteFranchise() error = %v", err)
	}
	if _, err := svc.GetFranchiseByID(ctx, 1); !errors.Is(err, ErrFranchiseNotFound) {
		t.Errorf("GetFranchiseByID(deleted) error = %v, want ErrFranchiseNotFound", err)
	}
}

func TestFranchiseServiceUploadLogo(t *testing.T) {
	repo := newMemFranchiseRepo(models.Franchise{ID: 1, Name: "Gotham"})
	svc := NewFranchiseService(repo, newMemStore(), discardLogger())

	f, err := svc.UploadFranchiseLogo(context.Background(), 1, ImageUpload{
		Filename: "bat", ContentType: "image/png", Reader: bytes.NewReader([]byte("png")),
	})
	if err != nil {
		t.Fatalf("UploadFranchiseLogo() error = %v", err)
	}
	if f.LogoPath == nil || *f.LogoPath == "" {
		t.Errorf("LogoPath not set: %+v", f)
	}
	if _, err := svc.UploadFranchiseLogo(context.Background(), 99, ImageUpload{
		ContentType: "image/png", Reader: bytes.NewReader(nil),
	}); !errors.Is(err, ErrFranchiseNotFound) {
		t.Errorf("UploadFranchiseLogo(missing) error = %v, want ErrFranchiseNotFound", err)
	}
}
