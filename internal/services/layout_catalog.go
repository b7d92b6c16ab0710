package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"signage-backend/internal/models"
)

type LayoutCatalog struct {
	DB *gorm.DB
}

// ListAll returns every saved layout, newest-created first.
func (c *LayoutCatalog) ListAll() ([]models.Layout, error) {
	var layouts []models.Layout
	if err := c.DB.Order("created_at DESC, id DESC").Find(&layouts).Error; err != nil {
		return nil, err
	}
	return layouts, nil
}

// Save snapshots the three slot refs under a new id. It never touches the
// screen registry.
func (c *LayoutCatalog) Save(name string, tv1, tv2, tv3 *string) (*models.Layout, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: layout name must not be empty", ErrValidation)
	}
	for _, ref := range []*string{tv1, tv2, tv3} {
		if err := ValidateImageRef(ref); err != nil {
			return nil, err
		}
	}
	layout := models.Layout{Name: name, Tv1URL: tv1, Tv2URL: tv2, Tv3URL: tv3}
	if err := c.DB.Create(&layout).Error; err != nil {
		return nil, err
	}
	return &layout, nil
}

// Restore atomically writes the snapshot back to screens "1".."3" and
// returns the refreshed screen list. The layout row is left untouched.
func (c *LayoutCatalog) Restore(id string) ([]models.Screen, error) {
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var layout models.Layout
		if err := tx.First(&layout, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: layout %s", ErrNotFound, id)
			}
			return err
		}
		if err := ensureSeeded(tx); err != nil {
			return err
		}
		// Fixed positional mapping; the layout schema hard-codes three slots.
		slots := []struct {
			screenID string
			ref      *string
		}{
			{"1", layout.Tv1URL},
			{"2", layout.Tv2URL},
			{"3", layout.Tv3URL},
		}
		for _, s := range slots {
			res := tx.Model(&models.Screen{}).Where("id = ?", s.screenID).
				Update("image_url", s.ref)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: screen %s", ErrNotFound, s.screenID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	registry := &ScreenRegistry{DB: c.DB}
	return registry.ListAll()
}

// UpdateName renames a layout; the snapshot fields stay as saved.
func (c *LayoutCatalog) UpdateName(id, name string) (*models.Layout, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: layout name must not be empty", ErrValidation)
	}
	var layout models.Layout
	if err := c.DB.First(&layout, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: layout %s", ErrNotFound, id)
		}
		return nil, err
	}
	layout.Name = name
	if err := c.DB.Save(&layout).Error; err != nil {
		return nil, err
	}
	return &layout, nil
}

func (c *LayoutCatalog) Delete(id string) error {
	res := c.DB.Where("id = ?", id).Delete(&models.Layout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: layout %s", ErrNotFound, id)
	}
	return nil
}
