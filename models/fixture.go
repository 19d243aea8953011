package models

// WinnerVariant показывает, во что разрешился победитель матча.
type WinnerVariant string

const (
	WinnerVariantFranchise  WinnerVariant = "franchise"
	WinnerVariantTeam       WinnerVariant = "team"
	WinnerVariantUnresolved WinnerVariant = "unresolved"
)

// ResolvedWinner хранит разрешённую ссылку на победителя. Name пустое для Unresolved.
type ResolvedWinner struct {
	Type WinnerVariant `json:"type"`
	ID   int           `json:"id"`
	Name *string       `json:"name,omitempty"`
}

// NamedRef хранит пару id/имя для отображения соперника.
type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Fixture дополняет матч именами соперников, игры и победителя.
type Fixture struct {
	ID                int             `json:"id"`
	GameID            int             `json:"game_id"`
	GameName          *string         `json:"game_name"`
	HomeFranchiseID   *int            `json:"home_franchise_id"`
	HomeFranchiseName *string         `json:"home_franchise_name"`
	AwayFranchiseID   *int            `json:"away_franchise_id"`
	AwayFranchiseName *string         `json:"away_franchise_name"`
	HomeTeamID        *int            `json:"home_team_id"`
	HomeTeamName      *string         `json:"home_team_name"`
	AwayTeamID        *int            `json:"away_team_id"`
	AwayTeamName      *string         `json:"away_team_name"`
	HomeTeam          *NamedRef       `json:"home_team"`
	AwayTeam          *NamedRef       `json:"away_team"`
	MatchDate         *string         `json:"match_date"`
	MatchTime         *string         `json:"match_time"`
	Status            MatchStatus     `json:"status"`
	Location          *string         `json:"location"`
	Round             *string         `json:"round"`
	ScoreSummary      *string         `json:"score_summary"`
	WinnerKind        *WinnerKind     `json:"winner_kind"`
	WinnerID          *int            `json:"winner_id"`
	Winner            *ResolvedWinner `json:"winner"`
	WinnerName        *string         `json:"winner_name"`
	ExtraData         ExtraData       `json:"extra_data"`
}
