//go:build !prod

package database

// GetDefaultDBPath returns the database path for development mode.
// In dev mode the database sits next to the working directory for easy inspection.
func GetDefaultDBPath() string {
	return "tourgen.db"
}

// IsDevelopment reports whether this is a development build.
func IsDevelopment() bool {
	return true
}
