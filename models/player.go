package models

import "time"

type Player struct {
	ID               int       `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	FranchiseID      *int      `json:"franchise_id,omitempty" db:"franchise_id"`
	Email            *string   `json:"email,omitempty" db:"email"`
	ProfileImagePath *string   `json:"profile_image_path,omitempty" db:"profile_image_path"`
	TotalPoints      int       `json:"total_points" db:"total_points"` // сумма points_earned по всем участиям
	ExtraData        ExtraData `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type PlayerPatch struct {
	Name             *string
	FranchiseID      *int
	Email            *string
	ProfileImagePath *string
	ExtraData        ExtraData
}

// PlayerTeam описывает команду игрока вместе с именами франшизы и игры.
type PlayerTeam struct {
	TeamPlayerID  int       `json:"team_player_id"`
	TeamID        int       `json:"team_id"`
	TeamName      string    `json:"team_name"`
	Role          string    `json:"role"`
	IsCaptain     bool      `json:"is_captain"`
	FranchiseName *string   `json:"franchise_name"`
	GameName      *string   `json:"game_name"`
	ExtraData     ExtraData `json:"extra_data,omitempty"`
}
