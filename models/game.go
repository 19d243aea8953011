package models

import "time"

type GameCategory string

const (
	GameCategoryIndividual GameCategory = "individual"
	GameCategoryTeam       GameCategory = "team"
	GameCategoryMixed      GameCategory = "mixed"
)

func (c GameCategory) IsValid() bool {
	switch c {
	case GameCategoryIndividual, GameCategoryTeam, GameCategoryMixed:
		return true
	}
	return false
}

// Game описывает вид соревнования лиги (шахматы, бадминтон и т.д.).
type Game struct {
	ID            int          `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Description   *string      `json:"description,omitempty" db:"description"`
	WinningPoints int          `json:"winning_points" db:"winning_points"`
	Category      GameCategory `json:"category" db:"category"`
	ImagePath     *string      `json:"image_path,omitempty" db:"image_path"`
	ExtraData     ExtraData    `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
}

// GamePatch содержит только переданные поля; nil означает «не менять».
type GamePatch struct {
	Name          *string
	Description   *string
	WinningPoints *int
	Category      *GameCategory
	ImagePath     *string
	ExtraData     ExtraData
}
