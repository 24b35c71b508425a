package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindUp walks from the working directory towards the filesystem root and
// returns the first path named name.
func FindUp(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if FileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads the nearest .env into the process environment. Variables
// that are already set keep their values.
func LoadEnv() error {
	envPath, err := FindUp(".env")
	if err != nil {
		return err
	}
	return godotenv.Load(envPath)
}
