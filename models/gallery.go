package models

import "time"

type GalleryItem struct {
	ID          int       `json:"id" db:"id"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	ImagePath   string    `json:"image_path" db:"image_path"`
	MatchID     *int      `json:"match_id,omitempty" db:"match_id"`
	ExtraData   ExtraData `json:"extra_data,omitempty" db:"extra_data"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
