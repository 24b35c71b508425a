package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourgen/internal/database"
)

func TestHostFromEnv_Defaults(t *testing.T) {
	h, err := HostFromEnv(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, database.GetDefaultDBPath(), h.DBPath)
	assert.Equal(t, DefaultLogLevel(), h.LogLevel)
	assert.False(t, h.Keyring)
}

func TestDefaultLogLevel(t *testing.T) {
	want := LogLevelInfo
	if database.IsDevelopment() {
		want = LogLevelDebug
	}
	assert.Equal(t, want, DefaultLogLevel())
}

func TestHostFromEnv_LogLevelOverridesBuildDefault(t *testing.T) {
	h, err := HostFromEnv(lookupFrom(map[string]string{EnvLogLevel: LogLevelWarning}))
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarning, h.LogLevel)
}

func TestHostFromEnv_Values(t *testing.T) {
	h, err := HostFromEnv(lookupFrom(map[string]string{
		EnvDBPath:   "/tmp/t.db",
		EnvLogLevel: LogLevelDebug,
		EnvKeyring:  "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, Host{DBPath: "/tmp/t.db", LogLevel: "debug", Keyring: true}, h)
}

func TestHostFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown log level", map[string]string{EnvLogLevel: "loud"}},
		{"empty db path", map[string]string{EnvDBPath: ""}},
		{"keyring not a bool", map[string]string{EnvKeyring: "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HostFromEnv(lookupFrom(tt.env))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
