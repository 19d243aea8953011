package services

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
	"github.com/Dosada05/champion-league/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int                              { return &v }
func strPtr(v string) *string                        { return &v }
func boolPtr(v bool) *bool                           { return &v }
func kindPtr(k models.WinnerKind) *models.WinnerKind { return &k }

var errFakeDB = errors.New("fake database failure")

type fakeGameRepo struct {
	mu     sync.Mutex
	games  map[int]*models.Game
	nextID int
	inUse  map[int]bool
}

func newFakeGameRepo(games ...models.Game) *fakeGameRepo {
	r := &fakeGameRepo{games: map[int]*models.Game{}, inUse: map[int]bool{}}
	for i := range games {
		g := games[i]
		r.games[g.ID] = &g
		if g.ID > r.nextID {
			r.nextID = g.ID
		}
	}
	return r
}

func (r *fakeGameRepo) Create(_ context.Context, game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.games {
		if g.Name == game.Name {
			return repositories.ErrGameNameConflict
		}
	}
	r.nextID++
	game.ID = r.nextID
	stored := *game
	r.games[game.ID] = &stored
	return nil
}

func (r *fakeGameRepo) GetByID(_ context.Context, id int) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	out := *g
	return &out, nil
}

func (r *fakeGameRepo) List(_ context.Context, offset, limit int) ([]models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]models.Game, 0)
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		out = append(out, *r.games[id])
	}
	return out, nil
}

func (r *fakeGameRepo) Update(_ context.Context, id int, patch models.GamePatch) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	if patch.Name != nil {
		for otherID, other := range r.games {
			if otherID != id && other.Name == *patch.Name {
				return nil, repositories.ErrGameNameConflict
			}
		}
		g.Name = *patch.Name
	}
	if patch.Description != nil {
		g.Description = patch.Description
	}
	if patch.WinningPoints != nil {
		g.WinningPoints = *patch.WinningPoints
	}
	if patch.Category != nil {
		g.Category = *patch.Category
	}
	if patch.ImagePath != nil {
		g.ImagePath = patch.ImagePath
	}
	if patch.ExtraData != nil {
		g.ExtraData = patch.ExtraData
	}
	out := *g
	return &out, nil
}

func (r *fakeGameRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return repositories.ErrGameNotFound
	}
	if r.inUse[id] {
		return repositories.ErrGameInUse
	}
	delete(r.games, id)
	return nil
}

func (r *fakeGameRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.games {
		if g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// fakeFranchiseRepo и fakeTeamRepo нужны только для чтения победителей.
type fakeFranchiseRepo struct {
	repositories.FranchiseRepository
	franchises map[int]models.Franchise
	err        error
}

func (r *fakeFranchiseRepo) GetByID(_ context.Context, id int) (*models.Franchise, error) {
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.franchises[id]
	if !ok {
		return nil, repositories.ErrFranchiseNotFound
	}
	return &f, nil
}

type fakeTeamRepo struct {
	repositories.TeamRepository
	teams map[int]models.Team
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return &t, nil
}

// fakeMatchRepo повторяет семантику SQL-обновления: COALESCE по полям,
// слияние extra_data и запись победителя вместе с видом.
type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[int]*models.Match
	nextID  int
	updates int
}

func newFakeMatchRepo(matches ...models.Match) *fakeMatchRepo {
	r := &fakeMatchRepo{matches: map[int]*models.Match{}}
	for i := range matches {
		m := matches[i]
		r.matches[m.ID] = &m
		if m.ID > r.nextID {
			r.nextID = m.ID
		}
	}
	return r
}

func (r *fakeMatchRepo) Create(_ context.Context, m *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	stored := *m
	r.matches[m.ID] = &stored
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	out := *m
	return &out, nil
}

func (r *fakeMatchRepo) List(_ context.Context, filter repositories.ListMatchesFilter) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Match, 0)
	for _, m := range r.matches {
		if filter.GameID != nil && m.GameID != *filter.GameID {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchRepo) Update(_ context.Context, id int, p models.MatchPatch) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	r.updates++
	if p.GameID != nil {
		m.GameID = *p.GameID
	}
	if p.HomeFranchiseID != nil {
		m.HomeFranchiseID = p.HomeFranchiseID
	}
	if p.AwayFranchiseID != nil {
		m.AwayFranchiseID = p.AwayFranchiseID
	}
	if p.HomeTeamID != nil {
		m.HomeTeamID = p.HomeTeamID
	}
	if p.AwayTeamID != nil {
		m.AwayTeamID = p.AwayTeamID
	}
	if p.MatchDate != nil {
		m.MatchDate = p.MatchDate
	}
	if p.MatchTime != nil {
		m.MatchTime = p.MatchTime
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Location != nil {
		m.Location = p.Location
	}
	if p.Round != nil {
		m.Round = p.Round
	}
	if p.ScoreSummary != nil {
		m.ScoreSummary = p.ScoreSummary
	}
	switch {
	case p.ClearWinner:
		m.WinnerKind, m.WinnerID = nil, nil
	case p.Winner != nil:
		id := p.Winner.ID
		m.WinnerKind, m.WinnerID = p.Winner.Kind, &id
	}
	if p.ExtraData != nil {
		m.ExtraData = m.ExtraData.Merge(p.ExtraData)
	}
	out := *m
	return &out, nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func fixtureOf(m *models.Match) models.Fixture {
	return models.Fixture{
		ID:              m.ID,
		GameID:          m.GameID,
		HomeFranchiseID: m.HomeFranchiseID,
		AwayFranchiseID: m.AwayFranchiseID,
		HomeTeamID:      m.HomeTeamID,
		AwayTeamID:      m.AwayTeamID,
		MatchDate:       m.MatchDate,
		MatchTime:       m.MatchTime,
		Status:          m.Status,
		WinnerKind:      m.WinnerKind,
		WinnerID:        m.WinnerID,
		ExtraData:       m.ExtraData,
	}
}

func (r *fakeMatchRepo) ListFixtures(ctx context.Context, filter repositories.ListMatchesFilter) ([]models.Fixture, error) {
	matches, err := r.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]models.Fixture, 0, len(matches))
	for i := range matches {
		out = append(out, fixtureOf(&matches[i]))
	}
	return out, nil
}

func (r *fakeMatchRepo) GetFixture(ctx context.Context, id int) (*models.Fixture, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f := fixtureOf(m)
	return &f, nil
}

type fakeParticipantRepo struct {
	mu           sync.Mutex
	participants map[int]*models.MatchParticipant
	nextID       int
	totals       map[int]int
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: map[int]*models.MatchParticipant{}, totals: map[int]int{}}
}

// recompute повторяет recomputePlayerTotals: сумма очков по всем участиям.
func (r *fakeParticipantRepo) recompute(playerID int) {
	sum := 0
	for _, p := range r.participants {
		if p.PlayerID == playerID {
			sum += p.PointsEarned
		}
	}
	r.totals[playerID] = sum
}

func (r *fakeParticipantRepo) Create(_ context.Context, p *models.MatchParticipant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	stored := *p
	r.participants[p.ID] = &stored
	r.recompute(p.PlayerID)
	return nil
}

func (r *fakeParticipantRepo) GetByID(_ context.Context, id int) (*models.MatchParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.participants[id]
	if !ok {
		return nil, repositories.ErrParticipantNotFound
	}
	out := *p
	return &out, nil
}

func (r *fakeParticipantRepo) List(_ context.Context, filter repositories.ListParticipantsFilter) ([]models.MatchParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MatchParticipant, 0)
	for _, p := range r.participants {
		if filter.MatchID == nil || p.MatchID == *filter.MatchID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeParticipantRepo) Update(_ context.Context, id int, patch models.MatchParticipantPatch) (*models.MatchParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.participants[id]
	if !ok {
		return nil, repositories.ErrParticipantNotFound
	}
	if patch.PointsEarned != nil {
		p.PointsEarned = *patch.PointsEarned
	}
	if patch.IsWinner != nil {
		p.IsWinner = *patch.IsWinner
	}
	if patch.ExtraData != nil {
		p.ExtraData = p.ExtraData.Merge(patch.ExtraData)
	}
	r.recompute(p.PlayerID)
	out := *p
	return &out, nil
}

func (r *fakeParticipantRepo) Delete(_ context.Context, id int) (*models.MatchParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.participants[id]
	if !ok {
		return nil, repositories.ErrParticipantNotFound
	}
	delete(r.participants, id)
	r.recompute(p.PlayerID)
	return p, nil
}

func (r *fakeParticipantRepo) ListDetailed(ctx context.Context, matchID int) ([]models.MatchParticipantDetail, error) {
	list, err := r.List(ctx, repositories.ListParticipantsFilter{MatchID: &matchID})
	if err != nil {
		return nil, err
	}
	out := make([]models.MatchParticipantDetail, 0, len(list))
	for _, p := range list {
		out = append(out, models.MatchParticipantDetail{MatchParticipant: p})
	}
	return out, nil
}

type fakeGalleryRepo struct {
	items     map[int]*models.GalleryItem
	nextID    int
	createErr error
}

func (r *fakeGalleryRepo) Create(_ context.Context, item *models.GalleryItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	item.ID = r.nextID
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeGalleryRepo) GetByID(_ context.Context, id int) (*models.GalleryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrGalleryItemNotFound
	}
	out := *item
	return &out, nil
}

func (r *fakeGalleryRepo) List(_ context.Context, filter repositories.ListGalleryFilter) ([]models.GalleryItem, error) {
	out := make([]models.GalleryItem, 0)
	for _, item := range r.items {
		if filter.MatchID == nil || (item.MatchID != nil && *item.MatchID == *filter.MatchID) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeGalleryRepo) Delete(_ context.Context, id int) (*models.GalleryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrGalleryItemNotFound
	}
	delete(r.items, id)
	return item, nil
}

// memStore хранит объекты в памяти с локаторами вида mem://<key>.
type memStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deleteErr error
	deleted   []string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Put(_ context.Context, folder, filename, _ string, r io.Reader) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	key := storage.NewKey(folder, filename)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects["mem://"+key] = body
	return "mem://" + key, nil
}

func (s *memStore) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0)
	for locator := range s.objects {
		if strings.HasPrefix(strings.TrimPrefix(locator, "mem://"), prefix) {
			out = append(out, locator)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *memStore) Delete(_ context.Context, locator string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, locator)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.objects[locator]; !ok {
		return fs.ErrNotExist
	}
	delete(s.objects, locator)
	return nil
}

func (s *memStore) Owns(locator string) bool {
	return strings.HasPrefix(locator, "mem://")
}

// recordingPublisher запоминает разосланные события.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	MatchID int
	GameID  int
	Type    string
	Payload interface{}
}

func (p *recordingPublisher) PublishMatch(matchID, gameID int, messageType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{MatchID: matchID, GameID: gameID, Type: messageType, Payload: payload})
}
