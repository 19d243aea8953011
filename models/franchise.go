package models

import "time"

// Franchise представляет подразделение офиса, которому принадлежат игроки и команды.
type Franchise struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	FranchiseCode *string   `json:"franchise_code,omitempty" db:"franchise_code"`
	LogoPath      *string   `json:"logo_path,omitempty" db:"logo_path"`
	ExtraData     ExtraData `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type FranchisePatch struct {
	Name          *string
	FranchiseCode *string
	LogoPath      *string
	ExtraData     ExtraData
}
