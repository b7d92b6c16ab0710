package services

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"signage-backend/internal/models"
)

// ActivityLog is the mutation audit trail. Recording is best-effort: an
// audit miss must not fail the mutation that triggered it.
type ActivityLog struct {
	DB *gorm.DB
}

func (a *ActivityLog) Record(actor, action string, details interface{}) {
	raw, err := json.Marshal(details)
	if err != nil {
		log.Printf("activity: marshal details for %s: %v", action, err)
		return
	}
	entry := models.ActivityEntry{Actor: actor, Action: action, Details: datatypes.JSON(raw)}
	if err := a.DB.Create(&entry).Error; err != nil {
		log.Printf("activity: record %s: %v", action, err)
	}
}

// List returns entries newest-first with the total count for pagination.
func (a *ActivityLog) List(page, limit int) ([]models.ActivityEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var total int64
	if err := a.DB.Model(&models.ActivityEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entries []models.ActivityEntry
	err := a.DB.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
