//go:build prod

package database

import (
	"log"
	"os"
	"path/filepath"
)

// GetDefaultDBPath returns the database path for production mode.
// In production the database lives in the user's config directory.
func GetDefaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "tourgen.db"
	}

	appDir := filepath.Join(configDir, "tourgen")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		log.Printf("Warning: Failed to create app config dir: %v. Using fallback.", err)
		return "tourgen.db"
	}

	return filepath.Join(appDir, "tourgen.db")
}

// IsDevelopment reports whether this is a development build.
func IsDevelopment() bool {
	return false
}
