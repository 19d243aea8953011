package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/champion-league/feed"
	"github.com/Dosada05/champion-league/models"
)

func TestParticipantServiceTotals(t *testing.T) {
	matches := newFakeMatchRepo(scheduledMatch(), models.Match{ID: 2, GameID: 2, Status: models.MatchStatusScheduled})
	participants := newFakeParticipantRepo()
	publisher := &recordingPublisher{}
	svc := NewParticipantService(participants, NewFixtureService(matches, newTestResolver()), publisher, discardLogger())
	ctx := context.Background()

	first, err := svc.AddParticipant(ctx, CreateParticipantInput{MatchID: 1, PlayerID: 7, PointsEarned: intPtr(10), IsWinner: boolPtr(true)})
	if err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	second, err := svc.AddParticipant(ctx, CreateParticipantInput{MatchID: 2, PlayerID: 7})
	if err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	if second.PointsEarned != 0 || second.IsWinner {
		t.Errorf("defaults = (%d, %v), want (0, false)", second.PointsEarned, second.IsWinner)
	}
	if participants.totals[7] != 10 {
		t.Fatalf("total_points = %d, want 10", participants.totals[7])
	}

	updated, err := svc.UpdateParticipant(ctx, second.ID, UpdateParticipantInput{
		PointsEarned: intPtr(5),
		ExtraData:    models.ExtraData{"moves": 31.0},
	})
	if err != nil {
		t.Fatalf("UpdateParticipant() error = %v", err)
	}
	if updated.IsWinner {
		t.Error("is_winner changed by a points-only update")
	}
	if participants.totals[7] != 15 {
		t.Errorf("total_points = %d, want 15 after update", participants.totals[7])
	}

	if err := svc.DeleteParticipant(ctx, first.ID); err != nil {
		t.Fatalf("DeleteParticipant() error = %v", err)
	}
	if participants.totals[7] != 5 {
		t.Errorf("total_points = %d, want 5 after delete", participants.totals[7])
	}

	if len(publisher.events) != 4 {
		t.Fatalf("published %d events, want 4", len(publisher.events))
	}
	for _, ev := range publisher.events {
		if ev.Type != feed.MessageResultUpdated || ev.GameID != 2 {
			t.Errorf("event = %+v, want RESULT_UPDATED for game 2", ev)
		}
	}
}

func TestParticipantServiceErrors(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo(), NewFixtureService(newFakeMatchRepo(), newTestResolver()), nil, discardLogger())
	ctx := context.Background()

	if _, err := svc.AddParticipant(ctx, CreateParticipantInput{MatchID: 1}); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("AddParticipant(no player) error = %v, want ErrInvalidReference", err)
	}
	if _, err := svc.UpdateParticipant(ctx, 3, UpdateParticipantInput{PointsEarned: intPtr(1)}); !errors.Is(err, ErrParticipantNotFound) {
		t.Errorf("UpdateParticipant(missing) error = %v, want ErrParticipantNotFound", err)
	}
	if err := svc.DeleteParticipant(ctx, 3); !errors.Is(err, ErrParticipantNotFound) {
		t.Errorf("DeleteParticipant(missing) error = %v, want ErrParticipantNotFound", err)
	}
}
