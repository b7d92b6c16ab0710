package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityEntry records one admin mutation for the audit trail.
type ActivityEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Actor     string         `gorm:"size:255" json:"actor"`
	Action    string         `gorm:"size:64;index" json:"action"`
	Details   datatypes.JSON `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}
