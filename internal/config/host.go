package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"tourgen/internal/database"
)

const (
	EnvDBPath   = "TOURGEN_DB_PATH"
	EnvLogLevel = "TOURGEN_LOG_LEVEL"
	EnvKeyring  = "TOURGEN_KEYRING"
)

// Log level constants
const (
	LogLevelTrace   = "trace"
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Host holds settings for the host process itself rather than the app.
type Host struct {
	DBPath   string `validate:"required"`
	LogLevel string `validate:"required,oneof=trace debug info warning error"`
	Keyring  bool
}

// DefaultLogLevel is debug in development builds and info otherwise.
func DefaultLogLevel() string {
	if database.IsDevelopment() {
		return LogLevelDebug
	}
	return LogLevelInfo
}

func LoadHost() (Host, error) {
	return HostFromEnv(os.LookupEnv)
}

func HostFromEnv(lookup LookupFunc) (Host, error) {
	h := Host{
		DBPath:   valueOr(lookup, EnvDBPath, database.GetDefaultDBPath()),
		LogLevel: valueOr(lookup, EnvLogLevel, DefaultLogLevel()),
	}

	if raw, ok := lookup(EnvKeyring); ok && raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return Host{}, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidConfig, EnvKeyring, raw)
		}
		h.Keyring = enabled
	}

	if err := h.Validate(); err != nil {
		return Host{}, err
	}
	return h, nil
}

func (h Host) Validate() error {
	validate := validator.New()
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
