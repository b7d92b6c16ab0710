package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"signage-backend/internal/models"
)

// screenIDs is the fixed set of physical displays. There is no API to
// create or remove screens; the registry seeds these on first read.
var screenIDs = []string{"1", "2", "3"}

// DefaultImagePath returns the per-screen fallback asset path, e.g.
// "/image2.png" for screen "2".
func DefaultImagePath(id string) string {
	return fmt.Sprintf("/image%s.png", id)
}

type ScreenRegistry struct {
	DB *gorm.DB
}

// ensureSeeded inserts the fixed screen set when the table is empty. It must
// run inside the caller's transaction so a concurrent first read cannot
// seed twice.
func ensureSeeded(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Screen{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i, id := range screenIDs {
		def := DefaultImagePath(id)
		screen := models.Screen{ID: id, Position: i + 1, ImageURL: &def}
		if err := tx.Create(&screen).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns every screen ordered by position, seeding the fixed set
// first when the registry is empty.
func (r *ScreenRegistry) ListAll() ([]models.Screen, error) {
	var screens []models.Screen
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureSeeded(tx); err != nil {
			return err
		}
		return tx.Order("position ASC, id ASC").Find(&screens).Error
	})
	if err != nil {
		return nil, err
	}
	return screens, nil
}

type PositionUpdate struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// Reorder applies every (id, position) pair as one batch. Every id must
// already exist; an unknown id fails the whole batch and nothing commits.
func (r *ScreenRegistry) Reorder(updates []PositionUpdate) ([]models.Screen, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: empty reorder batch", ErrValidation)
	}
	for _, u := range updates {
		if u.ID == "" || u.Position < 1 {
			return nil, fmt.Errorf("%w: reorder entries need an id and a position >= 1", ErrValidation)
		}
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureSeeded(tx); err != nil {
			return err
		}
		for _, u := range updates {
			res := tx.Model(&models.Screen{}).Where("id = ?", u.ID).
				Update("position", u.Position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: screen %s", ErrNotFound, u.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.ListAll()
}

// SetImage assigns an image reference to a screen. A nil ref clears the
// assignment, which is distinct from the default a reset writes back.
func (r *ScreenRegistry) SetImage(id string, imageURL *string) (*models.Screen, error) {
	if err := ValidateImageRef(imageURL); err != nil {
		return nil, err
	}
	var screen models.Screen
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureSeeded(tx); err != nil {
			return err
		}
		if err := tx.First(&screen, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: screen %s", ErrNotFound, id)
			}
			return err
		}
		screen.ImageURL = imageURL
		return tx.Save(&screen).Error
	})
	if err != nil {
		return nil, err
	}
	return &screen, nil
}

// ResetImage puts a screen back on its deterministic default asset.
func (r *ScreenRegistry) ResetImage(id string) (*models.Screen, error) {
	def := DefaultImagePath(id)
	return r.SetImage(id, &def)
}

// ResetAll resets every screen to its default asset in one transaction.
func (r *ScreenRegistry) ResetAll() ([]models.Screen, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureSeeded(tx); err != nil {
			return err
		}
		var screens []models.Screen
		if err := tx.Find(&screens).Error; err != nil {
			return err
		}
		for i := range screens {
			def := DefaultImagePath(screens[i].ID)
			screens[i].ImageURL = &def
			if err := tx.Save(&screens[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.ListAll()
}

// ChangesSince is the polling primitive: every screen whose updatedAt is
// strictly after the cutoff, ordered by position. The zero time returns the
// full set.
func (r *ScreenRegistry) ChangesSince(since time.Time) ([]models.Screen, error) {
	var screens []models.Screen
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureSeeded(tx); err != nil {
			return err
		}
		return tx.Where("updated_at > ?", since).
			Order("position ASC, id ASC").Find(&screens).Error
	})
	if err != nil {
		return nil, err
	}
	return screens, nil
}
