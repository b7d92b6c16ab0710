package config

import (
	"os"
)

type Config struct {
	Port    string
	AppMode string // development | production; selects the image volume root
	DBType  string // postgres | sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string
	JWTSecret    string
	JWTExpiresIn string // minutes
	AdminEmail    string
	AdminPassword string
	AdminFullName string
	// Image volume roots
	ImageRoot    string
	ImageRootDev string
	// Viewer signals
	ReloadPulseSeconds string
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		AppMode:    getenv("APP_MODE", "development"),
		DBType:     getenv("DB_TYPE", "sqlite"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "signage_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		SQLitePath: getenv("SQLITE_PATH", "signage.db"),
		JWTSecret:    getenv("JWT_SECRET", "supersecret_change_me"),
		JWTExpiresIn: getenv("JWT_EXPIRES_IN", "60"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		AdminFullName: getenv("ADMIN_FULL_NAME", "Administrator"),
		ImageRoot:          getenv("IMAGE_ROOT", "/var/lib/signage/images"),
		ImageRootDev:       getenv("IMAGE_ROOT_DEV", "./images"),
		ReloadPulseSeconds: getenv("RELOAD_PULSE_SECONDS", "10"),
	}
}

// ImageVolumeRoot returns the image directory for the configured mode.
func (c *Config) ImageVolumeRoot() string {
	if c.AppMode == "production" {
		return c.ImageRoot
	}
	return c.ImageRootDev
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
