package models

import "time"

// Team объединяет игроков франшизы для конкретной игры.
type Team struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	FranchiseID int       `json:"franchise_id" db:"franchise_id"`
	GameID      int       `json:"game_id" db:"game_id"`
	LogoPath    *string   `json:"logo_path,omitempty" db:"logo_path"`
	ExtraData   ExtraData `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type TeamPatch struct {
	Name        *string
	FranchiseID *int
	GameID      *int
	LogoPath    *string
	ExtraData   ExtraData
}

// TeamWithDetails дополняет команду именами франшизы и игры.
type TeamWithDetails struct {
	Team
	FranchiseName string `json:"franchise_name"`
	GameName      string `json:"game_name"`
	PlayersCount  int    `json:"players_count"`
}

const DefaultMemberRole = "member"

// TeamMembership связывает команду и игрока; пара (team_id, player_id) уникальна.
type TeamMembership struct {
	ID        int       `json:"id" db:"id"`
	TeamID    int       `json:"team_id" db:"team_id"`
	PlayerID  int       `json:"player_id" db:"player_id"`
	Role      string    `json:"role" db:"role"`
	IsCaptain bool      `json:"is_captain" db:"is_captain"`
	ExtraData ExtraData `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TeamRosterEntry описывает участника команды с данными игрока.
type TeamRosterEntry struct {
	TeamPlayerID int       `json:"team_player_id"`
	PlayerID     int       `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	PlayerEmail  *string   `json:"player_email"`
	TotalPoints  int       `json:"total_points"`
	Role         string    `json:"role"`
	IsCaptain    bool      `json:"is_captain"`
	ExtraData    ExtraData `json:"extra_data,omitempty"`
}
