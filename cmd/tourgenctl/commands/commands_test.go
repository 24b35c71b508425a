package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourgen/internal/interop"
	"tourgen/internal/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func seed(t *testing.T, dbPath string, msgs ...interop.Outbound) {
	t.Helper()
	s, err := openSession(NewRootCmd(), &rootOptions{dbPath: dbPath})
	require.NoError(t, err)
	defer s.close()
	for _, msg := range msgs {
		_, err := s.Bridge.Handle(context.Background(), msg)
		require.NoError(t, err)
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abcd"))
	assert.Equal(t, "********6789", maskSecret("sk-123456789"))
}

func TestConfigCmd(t *testing.T) {
	t.Setenv("BASE_URL", "/base/")
	t.Setenv("VITE_LLM_API_KEY", "sk-verysecret")
	t.Setenv("VITE_LLM_ENDPOINT", "https://llm.example")

	out, err := run(t, "config")
	require.NoError(t, err)

	var got configOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "/base/", got.Flags.BasePath)
	assert.Equal(t, "https://llm.example", got.Flags.LLMSettings.Endpoint)
	assert.Equal(t, "*********cret", got.Config.LLMAPIKey)
	assert.NotContains(t, out, "sk-verysecret")
}

func TestConfigCmd_InvalidEndpoint(t *testing.T) {
	t.Setenv("VITE_LLM_ENDPOINT", "nope")
	_, err := run(t, "config")
	assert.Error(t, err)
}

func TestToursListAndExport(t *testing.T) {
	t.Setenv("TOURGEN_KEYRING", "false")
	dbPath := filepath.Join(t.TempDir(), "cli.db")
	seed(t, dbPath,
		interop.SaveTour{Data: models.Tour{ID: "first", Prompt: "parks", Stops: []models.Stop{{Title: "a"}}}},
		interop.SaveTour{Data: models.Tour{ID: "second", Prompt: "bridges"}},
	)

	out, err := run(t, "--db", dbPath, "tours", "list")
	require.NoError(t, err)
	assert.Equal(t, "1. first (1 stops) parks\n2. second (0 stops) bridges\n", out)

	exportPath := filepath.Join(t.TempDir(), "out", "tours.json")
	_, err = run(t, "--db", dbPath, "tours", "export", exportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	var tours []models.Tour
	require.NoError(t, json.Unmarshal(data, &tours))
	require.Len(t, tours, 2)
	assert.Equal(t, "first", tours[0].ID)
	assert.Equal(t, "second", tours[1].ID)

	_, err = run(t, "--db", dbPath, "tours", "export", exportPath)
	assert.Error(t, err)
	_, err = run(t, "--db", dbPath, "tours", "export", exportPath, "--force")
	assert.NoError(t, err)
}

func TestToursList_Empty(t *testing.T) {
	t.Setenv("TOURGEN_KEYRING", "false")
	out, err := run(t, "--db", filepath.Join(t.TempDir(), "empty.db"), "tours", "list")
	require.NoError(t, err)
	assert.Equal(t, "no tours saved\n", out)
}

func TestSettingsShow(t *testing.T) {
	t.Setenv("TOURGEN_KEYRING", "false")
	dbPath := filepath.Join(t.TempDir(), "settings.db")

	out, err := run(t, "--db", dbPath, "settings", "show")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	seed(t, dbPath, interop.SaveSettings{Data: models.Settings{APIKey: "sk-abcdefgh1234", Endpoint: "https://e.example", Model: "m"}})

	out, err = run(t, "--db", dbPath, "settings", "show")
	require.NoError(t, err)
	var got models.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "***********1234", got.APIKey)

	out, err = run(t, "--db", dbPath, "settings", "show", "--reveal")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "sk-abcdefgh1234", got.APIKey)
}

func TestStorageKeysAndClear(t *testing.T) {
	t.Setenv("TOURGEN_KEYRING", "false")
	dbPath := filepath.Join(t.TempDir(), "storage.db")
	seed(t, dbPath,
		interop.SaveTour{Data: models.Tour{ID: "x"}},
		interop.SaveSettings{Data: models.Settings{Endpoint: "https://e.example"}},
	)

	out, err := run(t, "--db", dbPath, "storage", "keys")
	require.NoError(t, err)
	assert.Equal(t, "settings\ntours\n", out)

	_, err = run(t, "--db", dbPath, "storage", "clear")
	assert.Error(t, err)

	_, err = run(t, "--db", dbPath, "storage", "clear", "--yes")
	require.NoError(t, err)

	out, err = run(t, "--db", dbPath, "storage", "keys")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestStorageRm(t *testing.T) {
	t.Setenv("TOURGEN_KEYRING", "false")
	dbPath := filepath.Join(t.TempDir(), "rm.db")
	seed(t, dbPath,
		interop.SaveTour{Data: models.Tour{ID: "x"}},
		interop.SaveSettings{Data: models.Settings{Endpoint: "https://e.example"}},
	)

	out, err := run(t, "--db", dbPath, "storage", "rm", "tours", "missing")
	require.NoError(t, err)
	assert.Equal(t, "removed tours\nremoved missing\n", out)

	out, err = run(t, "--db", dbPath, "storage", "keys")
	require.NoError(t, err)
	assert.Equal(t, "settings\n", out)

	_, err = run(t, "--db", dbPath, "storage", "rm")
	assert.Error(t, err)
}

func TestDBFlagDoesNotLeakIntoNextRun(t *testing.T) {
	t.Setenv("TOURGEN_KEYRING", "false")
	flagPath := filepath.Join(t.TempDir(), "flag.db")
	envPath := filepath.Join(t.TempDir(), "env.db")
	seed(t, flagPath, interop.SaveTour{Data: models.Tour{ID: "from-flag"}})
	seed(t, envPath, interop.SaveTour{Data: models.Tour{ID: "from-env"}})

	out, err := run(t, "--db", flagPath, "tours", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "from-flag")

	t.Setenv("TOURGEN_DB_PATH", envPath)
	out, err = run(t, "tours", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "from-env")
	assert.NotContains(t, out, "from-flag")
}
