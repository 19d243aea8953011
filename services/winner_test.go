package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/champion-league/models"
)

func newTestResolver() *WinnerResolver {
	franchises := &fakeFranchiseRepo{franchises: map[int]models.Franchise{
		3: {ID: 3, Name: "Falcons"},
		4: {ID: 4, Name: "Hawks"},
	}}
	teams := &fakeTeamRepo{teams: map[int]models.Team{
		4: {ID: 4, Name: "Chess Masters"},
		9: {ID: 9, Name: "Foosball Kings"},
	}}
	return NewWinnerResolver(franchises, teams)
}

func TestWinnerResolverResolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		ref      *models.WinnerRef
		wantType models.WinnerVariant
		wantName string
	}{
		{name: "tagged franchise", ref: &models.WinnerRef{Kind: kindPtr(models.WinnerKindFranchise), ID: 3}, wantType: models.WinnerVariantFranchise, wantName: "Falcons"},
		{name: "tagged team shares id with franchise", ref: &models.WinnerRef{Kind: kindPtr(models.WinnerKindTeam), ID: 4}, wantType: models.WinnerVariantTeam, wantName: "Chess Masters"},
		{name: "tagged team missing", ref: &models.WinnerRef{Kind: kindPtr(models.WinnerKindTeam), ID: 3}, wantType: models.WinnerVariantUnresolved},
		{name: "legacy prefers franchise", ref: &models.WinnerRef{ID: 4}, wantType: models.WinnerVariantFranchise, wantName: "Hawks"},
		{name: "legacy falls back to team", ref: &models.WinnerRef{ID: 9}, wantType: models.WinnerVariantTeam, wantName: "Foosball Kings"},
		{name: "legacy unknown", ref: &models.WinnerRef{ID: 42}, wantType: models.WinnerVariantUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.ref)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.Type != tt.wantType || got.ID != tt.ref.ID {
				t.Fatalf("Resolve() = %+v, want type %s id %d", got, tt.wantType, tt.ref.ID)
			}
			if tt.wantName == "" {
				if got.Name != nil {
					t.Errorf("Name = %q, want nil", *got.Name)
				}
				return
			}
			if got.Name == nil || *got.Name != tt.wantName {
				t.Errorf("Name = %v, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestWinnerResolverResolveNil(t *testing.T) {
	got, err := newTestResolver().Resolve(context.Background(), nil)
	if err != nil || got != nil {
		t.Fatalf("Resolve(nil) = %v, %v; want nil, nil", got, err)
	}
}

func TestWinnerResolverStorageError(t *testing.T) {
	r := NewWinnerResolver(&fakeFranchiseRepo{err: errFakeDB}, &fakeTeamRepo{})
	if _, err := r.Resolve(context.Background(), &models.WinnerRef{ID: 1}); !errors.Is(err, errFakeDB) {
		t.Fatalf("Resolve() error = %v, want %v", err, errFakeDB)
	}
}

func TestWinnerResolverValidate(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name    string
		ref     models.WinnerRef
		wantErr error
	}{
		{name: "existing team", ref: models.WinnerRef{Kind: kindPtr(models.WinnerKindTeam), ID: 9}},
		{name: "missing kind", ref: models.WinnerRef{ID: 3}, wantErr: ErrInvalidWinner},
		{name: "unknown kind", ref: models.WinnerRef{Kind: kindPtr("player"), ID: 3}, wantErr: ErrInvalidWinner},
		{name: "non-positive id", ref: models.WinnerRef{Kind: kindPtr(models.WinnerKindTeam), ID: 0}, wantErr: ErrInvalidWinner},
		{name: "missing row", ref: models.WinnerRef{Kind: kindPtr(models.WinnerKindFranchise), ID: 9}, wantErr: ErrWinnerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate(context.Background(), tt.ref)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && !errors.Is(err, ErrValidationFailed) {
				t.Errorf("Validate() error %v should be a validation failure", err)
			}
		})
	}
}
