package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	Password  string `json:"-"`
	Role      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}
