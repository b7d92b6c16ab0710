package database

import (
	"log"

	"gorm.io/gorm"

	"signage-backend/internal/config"
	"signage-backend/internal/models"
	"signage-backend/internal/utils"
)

// SeedAdmin creates the initial admin account when none exists. Screens are
// seeded lazily by the registry on first read, not here.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := cfg.AdminEmail
	if email == "" {
		email = "admin@example.com"
	}
	fullName := cfg.AdminFullName
	if fullName == "" {
		fullName = "Administrator"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName: fullName,
		Email:    email,
		Password: hashed,
		Role:     "admin",
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded initial admin:", email)
	return nil
}
