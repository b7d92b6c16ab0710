package models

import "time"

// Screen is one physical display slot. The registry seeds the fixed id set
// on first read; rows are never created or removed through the API.
// A nil ImageURL means "no image assigned", distinct from the per-id
// default asset a reset writes back.
type Screen struct {
	ID        string    `gorm:"size:16;primaryKey" json:"id"`
	Position  int       `gorm:"index" json:"position"`
	ImageURL  *string   `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
