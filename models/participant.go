package models

import "time"

// MatchParticipant хранит участие игрока в матче и его результат.
type MatchParticipant struct {
	ID           int       `json:"id" db:"id"`
	MatchID      int       `json:"match_id" db:"match_id"`
	PlayerID     int       `json:"player_id" db:"player_id"`
	FranchiseID  *int      `json:"franchise_id,omitempty" db:"franchise_id"`
	TeamID       *int      `json:"team_id,omitempty" db:"team_id"`
	PointsEarned int       `json:"points_earned" db:"points_earned"`
	IsWinner     bool      `json:"is_winner" db:"is_winner"`
	ExtraData    ExtraData `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// MatchParticipantPatch обновляет результат; ExtraData сливается с сохранёнными данными.
type MatchParticipantPatch struct {
	PointsEarned *int
	IsWinner     *bool
	ExtraData    ExtraData
}

// MatchParticipantDetail дополняет участника матча именами игрока и франшизы.
type MatchParticipantDetail struct {
	MatchParticipant
	PlayerName    *string `json:"player_name"`
	FranchiseName *string `json:"franchise_name"`
}
