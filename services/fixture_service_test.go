package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/champion-league/models"
)

func TestFixtureServiceDecorates(t *testing.T) {
	repo := newFakeMatchRepo(
		models.Match{ID: 1, GameID: 2, WinnerKind: kindPtr(models.WinnerKindFranchise), WinnerID: intPtr(3)},
		models.Match{ID: 2, GameID: 2, WinnerID: intPtr(9)},
		models.Match{ID: 3, GameID: 2, WinnerKind: kindPtr(models.WinnerKindTeam), WinnerID: intPtr(55)},
		models.Match{ID: 4, GameID: 2},
	)
	svc := NewFixtureService(repo, newTestResolver())

	fixtures, err := svc.ListFixtures(context.Background(), models.MatchFilter{}, Pagination{})
	if err != nil {
		t.Fatalf("ListFixtures() error = %v", err)
	}
	if len(fixtures) != 4 {
		t.Fatalf("len = %d, want 4", len(fixtures))
	}

	want := []struct {
		variant models.WinnerVariant
		name    string
	}{
		{models.WinnerVariantFranchise, "Falcons"},
		{models.WinnerVariantTeam, "Foosball Kings"},
		{models.WinnerVariantUnresolved, ""},
	}
	for i, w := range want {
		f := fixtures[i]
		if f.Winner == nil || f.Winner.Type != w.variant {
			t.Errorf("fixture %d winner = %+v, want %s", f.ID, f.Winner, w.variant)
			continue
		}
		if w.name == "" {
			if f.WinnerName != nil {
				t.Errorf("fixture %d winner_name = %q, want null", f.ID, *f.WinnerName)
			}
		} else if f.WinnerName == nil || *f.WinnerName != w.name {
			t.Errorf("fixture %d winner_name = %v, want %q", f.ID, f.WinnerName, w.name)
		}
	}
	if fixtures[3].Winner != nil || fixtures[3].WinnerName != nil {
		t.Errorf("fixture without winner = %+v", fixtures[3].Winner)
	}
}

func TestFixtureServiceTeamRefs(t *testing.T) {
	repo := newFakeMatchRepo(models.Match{ID: 1, GameID: 2, HomeTeamID: intPtr(4)})
	svc := NewFixtureService(repo, newTestResolver())

	f, err := svc.GetFixture(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetFixture() error = %v", err)
	}
	// Фейк не заполняет имена, поэтому объектов команд нет.
	if f.HomeTeam != nil || f.AwayTeam != nil {
		t.Errorf("team refs = (%v, %v), want nil without names", f.HomeTeam, f.AwayTeam)
	}
	if ref := namedRef(intPtr(4), strPtr("Chess Masters")); ref == nil || ref.ID != 4 || ref.Name != "Chess Masters" {
		t.Errorf("namedRef() = %+v", ref)
	}

	if _, err := svc.GetFixture(context.Background(), 8); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("GetFixture(missing) error = %v, want ErrMatchNotFound", err)
	}
	bad := models.MatchStatus("done")
	if _, err := svc.ListFixtures(context.Background(), models.MatchFilter{Status: &bad}, Pagination{}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ListFixtures(bad status) error = %v, want ErrInvalidStatus", err)
	}
}
