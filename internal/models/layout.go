package models

import (
	"time"

	"gorm.io/gorm"

	"signage-backend/internal/utils"
)

// Layout is a named snapshot of the three screens' image assignments.
// Restoring one writes the slots back to the screens; the layout row
// itself is never mutated by a restore.
type Layout struct {
	ID        string    `gorm:"size:32;primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Tv1URL    *string   `gorm:"type:text" json:"tv1_url"`
	Tv2URL    *string   `gorm:"type:text" json:"tv2_url"`
	Tv3URL    *string   `gorm:"type:text" json:"tv3_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Layout) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID, err = utils.GenerateCode(12)
	}
	return err
}
