package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/champion-league/leaderboard"
	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/services"
	"github.com/go-chi/chi/v5"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeGameService struct {
	services.GameService
	games map[int]*models.Game
}

func (f *fakeGameService) GetGameByID(_ context.Context, id int) (*models.Game, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, services.ErrGameNotFound
	}
	return g, nil
}

type fakeMatchService struct {
	services.MatchService
	gotUpdate  *services.UpdateMatchInput
	gotFilter  models.MatchFilter
	gotPage    services.Pagination
	updateErr  error
	deleted    []int
	matchFound bool
}

func (f *fakeMatchService) UpdateMatch(_ context.Context, id int, input services.UpdateMatchInput) (*models.Match, error) {
	f.gotUpdate = &input
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Match{ID: id, GameID: 1, Status: models.MatchStatusCompleted}, nil
}

func (f *fakeMatchService) ListMatches(_ context.Context, filter models.MatchFilter, page services.Pagination) ([]models.Match, error) {
	f.gotFilter, f.gotPage = filter, page
	return []models.Match{}, nil
}

func (f *fakeMatchService) DeleteMatch(_ context.Context, id int) error {
	if !f.matchFound {
		return services.ErrMatchNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMatchService) GetMatchByID(_ context.Context, id int) (*models.Match, error) {
	if !f.matchFound {
		return nil, services.ErrMatchNotFound
	}
	return &models.Match{ID: id, GameID: 1}, nil
}

type fakeLeaderboardService struct {
	services.LeaderboardService
	got leaderboard.Query
	err error
}

func (f *fakeLeaderboardService) Players(_ context.Context, q leaderboard.Query) ([]leaderboard.PlayerEntry, error) {
	f.got = q
	if f.err != nil {
		return nil, f.err
	}
	return []leaderboard.PlayerEntry{{ID: 1, Name: "Jane Smith", TotalPoints: 25}}, nil
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "not found", err: services.ErrGameNotFound, status: http.StatusNotFound, message: "Game not found"},
		{name: "wrapped not found", err: errWrap(services.ErrMatchNotFound), status: http.StatusNotFound},
		{name: "conflict", err: services.ErrGameInUse, status: http.StatusConflict},
		{name: "validation", err: services.ErrInvalidStatus, status: http.StatusUnprocessableEntity},
		{name: "unknown", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mapServiceErrorToHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			body := decodeBody(t, rec)
			if tt.message != "" && body["error"] != tt.message {
				t.Errorf("error = %v, want %q", body["error"], tt.message)
			}
			if tt.status == http.StatusInternalServerError && strings.Contains(rec.Body.String(), "connection reset") {
				t.Error("internal error details leaked to client")
			}
		})
	}
}

func errWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "outer: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }

func TestGetGame(t *testing.T) {
	h := NewGameHandler(&fakeGameService{games: map[int]*models.Game{
		2: {ID: 2, Name: "Chess", WinningPoints: 10, Category: models.GameCategoryIndividual},
	}})
	r := chi.NewRouter()
	r.Get("/games/{gameID}", h.GetGame)

	rec := serve(t, r, http.MethodGet, "/games/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["name"] != "Chess" {
		t.Errorf("name = %v, want bare entity with name Chess", body["name"])
	}

	rec = serve(t, r, http.MethodGet, "/games/99", "")
	if rec.Code != http.StatusNotFound || decodeBody(t, rec)["error"] != "Game not found" {
		t.Errorf("missing game: status %d body %s", rec.Code, rec.Body.String())
	}

	for _, path := range []string{"/games/abc", "/games/0"} {
		if rec := serve(t, r, http.MethodGet, path, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
	}
}

func matchRouter(ms *fakeMatchService) http.Handler {
	h := NewMatchHandler(ms, nil)
	r := chi.NewRouter()
	r.Get("/matches", h.ListMatches)
	r.Put("/matches/{matchID}", h.UpdateMatch)
	r.Delete("/matches/{matchID}", h.DeleteMatch)
	return r
}

func TestUpdateMatchWinnerForms(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		wantKind models.WinnerKind
		wantID   int
	}{
		{name: "winner object", body: `{"winner": {"kind": "team", "id": 4}}`, status: 200, wantKind: models.WinnerKindTeam, wantID: 4},
		{name: "kind and id fields", body: `{"winner_kind": "franchise", "winner_id": 3}`, status: 200, wantKind: models.WinnerKindFranchise, wantID: 3},
		{name: "both forms", body: `{"winner": {"kind": "team", "id": 4}, "winner_id": 4}`, status: 422},
		{name: "kind without id", body: `{"winner_kind": "team"}`, status: 422},
		{name: "unknown field", body: `{"winner_name": "Falcons"}`, status: 400},
		{name: "malformed", body: `{"status": `, status: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := &fakeMatchService{}
			rec := serve(t, matchRouter(ms), http.MethodPut, "/matches/7", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				if ms.gotUpdate != nil {
					t.Error("service called for rejected request")
				}
				return
			}
			w := ms.gotUpdate.Winner
			if w == nil || w.Kind == nil || *w.Kind != tt.wantKind || w.ID != tt.wantID {
				t.Errorf("winner = %+v, want %s %d", w, tt.wantKind, tt.wantID)
			}
		})
	}
}

func TestUpdateMatchPassesPartialFields(t *testing.T) {
	ms := &fakeMatchService{}
	body := `{"score_summary": "3-1", "clear_winner": true, "extra_data": {"notes": "Close game"}}`
	rec := serve(t, matchRouter(ms), http.MethodPut, "/matches/7", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}

	in := ms.gotUpdate
	if in.ScoreSummary == nil || *in.ScoreSummary != "3-1" {
		t.Errorf("score_summary = %v", in.ScoreSummary)
	}
	if !in.ClearWinner {
		t.Error("clear_winner not passed")
	}
	if in.Status != nil || in.GameID != nil || in.Winner != nil {
		t.Error("absent fields must stay nil")
	}
	if in.ExtraData["notes"] != "Close game" {
		t.Errorf("extra_data = %v", in.ExtraData)
	}
}

func TestUpdateMatchServiceError(t *testing.T) {
	ms := &fakeMatchService{updateErr: services.ErrWinnerNotFound}
	rec := serve(t, matchRouter(ms), http.MethodPut, "/matches/7", `{"winner_kind": "team", "winner_id": 40}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestListMatchesFilters(t *testing.T) {
	ms := &fakeMatchService{}
	rec := serve(t, matchRouter(ms), http.MethodGet, "/matches?game_id=2&status=completed&round=Final&franchise_id=3&skip=5&limit=20", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("empty list body = %q, want []", rec.Body.String())
	}

	f := ms.gotFilter
	if f.GameID == nil || *f.GameID != 2 || f.FranchiseID == nil || *f.FranchiseID != 3 {
		t.Errorf("filter ids = %+v", f)
	}
	if f.Status == nil || *f.Status != models.MatchStatusCompleted || f.Round == nil || *f.Round != "Final" {
		t.Errorf("filter status/round = %+v", f)
	}
	if ms.gotPage.Skip != 5 || ms.gotPage.Limit == nil || *ms.gotPage.Limit != 20 {
		t.Errorf("page = %+v", ms.gotPage)
	}

	if rec := serve(t, matchRouter(ms), http.MethodGet, "/matches?skip=many", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad skip: status = %d, want 400", rec.Code)
	}
}

func TestDeleteMatch(t *testing.T) {
	ms := &fakeMatchService{matchFound: true}
	rec := serve(t, matchRouter(ms), http.MethodDelete, "/matches/7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Match deleted successfully" {
		t.Errorf("message = %v", msg)
	}

	ms.matchFound = false
	rec = serve(t, matchRouter(ms), http.MethodDelete, "/matches/8", "")
	if rec.Code != http.StatusNotFound || decodeBody(t, rec)["error"] != "Match not found" {
		t.Errorf("missing match: status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestLeaderboardPlayersQuery(t *testing.T) {
	ls := &fakeLeaderboardService{}
	h := NewLeaderboardHandler(ls)

	rec := serve(t, http.HandlerFunc(h.GetPlayers), http.MethodGet, "/leaderboard/players?game_id=3&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ls.got.GameID == nil || *ls.got.GameID != 3 || ls.got.Limit == nil || *ls.got.Limit != 5 {
		t.Errorf("query = %+v", ls.got)
	}

	rec = serve(t, http.HandlerFunc(h.GetPlayers), http.MethodGet, "/leaderboard/players", "")
	if rec.Code != http.StatusOK || ls.got.Limit != nil || ls.got.GameID != nil {
		t.Errorf("defaults: status %d query %+v", rec.Code, ls.got)
	}

	if rec := serve(t, http.HandlerFunc(h.GetPlayers), http.MethodGet, "/leaderboard/players?limit=ten", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d, want 400", rec.Code)
	}

	ls.err = services.ErrInvalidLeaderboardLimit
	if rec := serve(t, http.HandlerFunc(h.GetPlayers), http.MethodGet, "/leaderboard/players?limit=-1", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("negative limit: status = %d, want 422", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec := serve(t, http.HandlerFunc(Health), http.MethodGet, "/", "")
	body := decodeBody(t, rec)
	if rec.Code != http.StatusOK || body["status"] != "ok" || body["message"] != "AMC Champion League API is running" {
		t.Errorf("health: status %d body %v", rec.Code, body)
	}
}
