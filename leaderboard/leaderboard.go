// Package leaderboard ранжирует игроков, франшизы и команды по очкам,
// набранным в матчах. Агрегация выполняется в памяти над наборами строк,
// которые поставляет Source.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

const DefaultLimit = 10

var ErrInvalidLimit = errors.New("leaderboard limit must not be negative")

type PlayerRow struct {
	ID            int
	Name          string
	FranchiseID   *int
	FranchiseName *string
	TotalPoints   int
}

type FranchiseRow struct {
	ID   int
	Name string
}

type TeamRow struct {
	ID            int
	Name          string
	FranchiseID   int
	FranchiseName string
	GameID        int
	GameName      string
}

type MembershipRow struct {
	TeamID   int
	PlayerID int
}

// ParticipationRow соответствует одной записи match_players вместе с игрой матча.
type ParticipationRow struct {
	PlayerID     int
	GameID       int
	PointsEarned int
	IsWinner     bool
}

// Source поставляет строки для агрегации. Если gameID не nil, Teams и
// Participations ограничиваются этой игрой.
type Source interface {
	Players(ctx context.Context) ([]PlayerRow, error)
	Franchises(ctx context.Context) ([]FranchiseRow, error)
	Teams(ctx context.Context, gameID *int) ([]TeamRow, error)
	Memberships(ctx context.Context) ([]MembershipRow, error)
	Participations(ctx context.Context, gameID *int) ([]ParticipationRow, error)
}

type PlayerEntry struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	FranchiseID   *int    `json:"franchise_id"`
	FranchiseName *string `json:"franchise_name"`
	TotalPoints   int     `json:"total_points"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	MatchesLost   int     `json:"matches_lost"`
}

type FranchiseEntry struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	TotalPoints   int    `json:"total_points"`
	MatchesPlayed int    `json:"matches_played"`
	MatchesWon    int    `json:"matches_won"`
	MatchesLost   int    `json:"matches_lost"`
	PlayersCount  int    `json:"players_count"`
	TeamsCount    int    `json:"teams_count"`
}

type TeamEntry struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	FranchiseName string `json:"franchise_name"`
	GameName      string `json:"game_name"`
	TotalPoints   int    `json:"total_points"`
	MatchesPlayed int    `json:"matches_played"`
	MatchesWon    int    `json:"matches_won"`
	MatchesLost   int    `json:"matches_lost"`
	PlayersCount  int    `json:"players_count"`
}

type Combined struct {
	Players    []PlayerEntry    `json:"player_leaderboard"`
	Franchises []FranchiseEntry `json:"franchise_leaderboard"`
	Teams      []TeamEntry      `json:"team_leaderboard"`
}

// Query задаёт область и размер таблицы. Limit == nil означает DefaultLimit.
type Query struct {
	GameID *int
	Limit  *int
}

func (q Query) limit() (int, error) {
	if q.Limit == nil {
		return DefaultLimit, nil
	}
	if *q.Limit < 0 {
		return 0, ErrInvalidLimit
	}
	return *q.Limit, nil
}

type Aggregator struct {
	source Source
}

func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// tally накапливает очки и число сыгранных/выигранных матчей.
type tally struct {
	points int
	played int
	won    int
}

func (t *tally) add(p ParticipationRow) {
	t.points += p.PointsEarned
	t.played++
	if p.IsWinner {
		t.won++
	}
}

func tallyByPlayer(parts []ParticipationRow) map[int]*tally {
	byPlayer := make(map[int]*tally)
	for _, p := range parts {
		t, ok := byPlayer[p.PlayerID]
		if !ok {
			t = &tally{}
			byPlayer[p.PlayerID] = t
		}
		t.add(p)
	}
	return byPlayer
}

// Players ранжирует игроков по сохранённому total_points. С фильтром по игре
// в таблицу попадают только игроки, сыгравшие в этой игре хотя бы раз.
func (a *Aggregator) Players(ctx context.Context, q Query) ([]PlayerEntry, error) {
	limit, err := q.limit()
	if err != nil {
		return nil, err
	}

	players, err := a.source.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	parts, err := a.source.Participations(ctx, q.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participations: %w", err)
	}
	byPlayer := tallyByPlayer(parts)

	candidates := make([]PlayerRow, 0, len(players))
	for _, p := range players {
		if q.GameID != nil {
			if _, ok := byPlayer[p.ID]; !ok {
				continue
			}
		}
		candidates = append(candidates, p)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TotalPoints != candidates[j].TotalPoints {
			return candidates[i].TotalPoints > candidates[j].TotalPoints
		}
		return candidates[i].ID < candidates[j].ID
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	entries := make([]PlayerEntry, 0, len(candidates))
	for _, p := range candidates {
		entry := PlayerEntry{
			ID:            p.ID,
			Name:          p.Name,
			FranchiseID:   p.FranchiseID,
			FranchiseName: p.FranchiseName,
			TotalPoints:   p.TotalPoints,
		}
		if t, ok := byPlayer[p.ID]; ok {
			entry.MatchesPlayed = t.played
			entry.MatchesWon = t.won
			entry.MatchesLost = t.played - t.won
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Franchises суммирует points_earned всех участий игроков франшизы.
func (a *Aggregator) Franchises(ctx context.Context, q Query) ([]FranchiseEntry, error) {
	limit, err := q.limit()
	if err != nil {
		return nil, err
	}

	franchises, err := a.source.Franchises(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load franchises: %w", err)
	}
	players, err := a.source.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	teams, err := a.source.Teams(ctx, q.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	parts, err := a.source.Participations(ctx, q.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participations: %w", err)
	}
	byPlayer := tallyByPlayer(parts)

	entries := make(map[int]*FranchiseEntry, len(franchises))
	for _, f := range franchises {
		entries[f.ID] = &FranchiseEntry{ID: f.ID, Name: f.Name}
	}
	for _, p := range players {
		if p.FranchiseID == nil {
			continue
		}
		entry, ok := entries[*p.FranchiseID]
		if !ok {
			continue
		}
		t, played := byPlayer[p.ID]
		if q.GameID == nil || played {
			entry.PlayersCount++
		}
		if !played {
			continue
		}
		entry.TotalPoints += t.points
		entry.MatchesPlayed += t.played
		entry.MatchesWon += t.won
	}
	for _, t := range teams {
		if entry, ok := entries[t.FranchiseID]; ok {
			entry.TeamsCount++
		}
	}

	result := make([]FranchiseEntry, 0, len(franchises))
	for _, f := range franchises {
		entry := entries[f.ID]
		entry.MatchesLost = entry.MatchesPlayed - entry.MatchesWon
		result = append(result, *entry)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalPoints != result[j].TotalPoints {
			return result[i].TotalPoints > result[j].TotalPoints
		}
		return result[i].ID < result[j].ID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Teams суммирует участия текущих членов команды. Очки участника
// засчитываются каждой команде, в которой он состоит.
func (a *Aggregator) Teams(ctx context.Context, q Query) ([]TeamEntry, error) {
	limit, err := q.limit()
	if err != nil {
		return nil, err
	}

	teams, err := a.source.Teams(ctx, q.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	memberships, err := a.source.Memberships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team memberships: %w", err)
	}
	parts, err := a.source.Participations(ctx, q.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participations: %w", err)
	}
	byPlayer := tallyByPlayer(parts)

	members := make(map[int][]int)
	for _, m := range memberships {
		members[m.TeamID] = append(members[m.TeamID], m.PlayerID)
	}

	result := make([]TeamEntry, 0, len(teams))
	for _, t := range teams {
		entry := TeamEntry{
			ID:            t.ID,
			Name:          t.Name,
			FranchiseName: t.FranchiseName,
			GameName:      t.GameName,
			PlayersCount:  len(members[t.ID]),
		}
		for _, playerID := range members[t.ID] {
			if tl, ok := byPlayer[playerID]; ok {
				entry.TotalPoints += tl.points
				entry.MatchesPlayed += tl.played
				entry.MatchesWon += tl.won
			}
		}
		entry.MatchesLost = entry.MatchesPlayed - entry.MatchesWon
		result = append(result, entry)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalPoints != result[j].TotalPoints {
			return result[i].TotalPoints > result[j].TotalPoints
		}
		return result[i].ID < result[j].ID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// All считает три таблицы параллельно; ошибка любой из них отменяет результат.
func (a *Aggregator) All(ctx context.Context, q Query) (*Combined, error) {
	if _, err := q.limit(); err != nil {
		return nil, err
	}

	var combined Combined
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := a.Players(gctx, q)
		combined.Players = entries
		return err
	})
	g.Go(func() error {
		entries, err := a.Franchises(gctx, q)
		combined.Franchises = entries
		return err
	})
	g.Go(func() error {
		entries, err := a.Teams(gctx, q)
		combined.Teams = entries
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &combined, nil
}
