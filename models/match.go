package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusCancelled  MatchStatus = "cancelled"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusInProgress, MatchStatusCompleted, MatchStatusCancelled:
		return true
	}
	return false
}

// WinnerKind указывает, на какую таблицу ссылается winner_id.
type WinnerKind string

const (
	WinnerKindFranchise WinnerKind = "franchise"
	WinnerKindTeam      WinnerKind = "team"
)

func (k WinnerKind) IsValid() bool {
	return k == WinnerKindFranchise || k == WinnerKindTeam
}

// WinnerRef ссылается на победителя с указанием таблицы. Kind == nil только у старых записей.
type WinnerRef struct {
	Kind *WinnerKind `json:"kind,omitempty"`
	ID   int         `json:"id"`
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	ExtraNotesKey     = "notes"
	ExtraAISummaryKey = "ai_summary"
)

type Match struct {
	ID              int         `json:"id" db:"id"`
	GameID          int         `json:"game_id" db:"game_id"`
	HomeFranchiseID *int        `json:"home_franchise_id,omitempty" db:"home_franchise_id"`
	AwayFranchiseID *int        `json:"away_franchise_id,omitempty" db:"away_franchise_id"`
	HomeTeamID      *int        `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID      *int        `json:"away_team_id,omitempty" db:"away_team_id"`
	MatchDate       *string     `json:"match_date,omitempty" db:"match_date"` // YYYY-MM-DD
	MatchTime       *string     `json:"match_time,omitempty" db:"match_time"` // HH:MM
	Status          MatchStatus `json:"status" db:"status"`
	Location        *string     `json:"location,omitempty" db:"location"`
	Round           *string     `json:"round,omitempty" db:"round"`
	ScoreSummary    *string     `json:"score_summary,omitempty" db:"score_summary"`
	WinnerKind      *WinnerKind `json:"winner_kind,omitempty" db:"winner_kind"`
	WinnerID        *int        `json:"winner_id,omitempty" db:"winner_id"`
	ExtraData       ExtraData   `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}

// Winner returns the stored winner reference, nil when no winner is recorded.
func (m *Match) Winner() *WinnerRef {
	if m.WinnerID == nil {
		return nil
	}
	return &WinnerRef{Kind: m.WinnerKind, ID: *m.WinnerID}
}

// MatchPatch описывает частичное обновление матча. ExtraData сливается с сохранёнными данными.
type MatchPatch struct {
	GameID          *int
	HomeFranchiseID *int
	AwayFranchiseID *int
	HomeTeamID      *int
	AwayTeamID      *int
	MatchDate       *string
	MatchTime       *string
	Status          *MatchStatus
	Location        *string
	Round           *string
	ScoreSummary    *string
	Winner          *WinnerRef
	ClearWinner     bool
	ExtraData       ExtraData
}

// MatchFilter фильтрует список матчей; nil означает «без фильтра».
type MatchFilter struct {
	GameID      *int
	Status      *MatchStatus
	Round       *string
	FranchiseID *int // домашняя или гостевая франшиза
}
