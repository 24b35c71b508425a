package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"

	"tourgen/internal/models"
	"tourgen/internal/utils"
)

const (
	EnvBaseURL     = "BASE_URL"
	EnvLLMModel    = "VITE_LLM_MODEL"
	EnvLLMAPIKey   = "VITE_LLM_API_KEY"
	EnvLLMEndpoint = "VITE_LLM_ENDPOINT"
)

const (
	DefaultBaseURL     = "/"
	DefaultLLMModel    = "qwen2.5-coder:7b"
	DefaultLLMAPIKey   = ""
	DefaultLLMEndpoint = "https://tourgen.loca.lt"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is the validated app environment. It is built once at startup and
// passed around by value.
type Config struct {
	BaseURL     string `json:"BASE_URL"`
	LLMModel    string `json:"VITE_LLM_MODEL"`
	LLMAPIKey   string `json:"VITE_LLM_API_KEY"`
	LLMEndpoint string `json:"VITE_LLM_ENDPOINT" validate:"required,url"`
}

// Load reads .env from the project root when there is one, then the process
// environment. Variables already set in the process win over .env.
func Load() (Config, error) {
	if err := utils.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup. A variable that is set, even to the
// empty string, overrides its default.
func FromEnv(lookup LookupFunc) (Config, error) {
	cfg := Config{
		BaseURL:     valueOr(lookup, EnvBaseURL, DefaultBaseURL),
		LLMModel:    valueOr(lookup, EnvLLMModel, DefaultLLMModel),
		LLMAPIKey:   valueOr(lookup, EnvLLMAPIKey, DefaultLLMAPIKey),
		LLMEndpoint: valueOr(lookup, EnvLLMEndpoint, DefaultLLMEndpoint),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the endpoint is a well-formed URL.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Flags returns the startup flags for the embedded app.
func (c Config) Flags() models.Flags {
	return models.Flags{
		BasePath: c.BaseURL,
		LLMSettings: models.Settings{
			APIKey:   c.LLMAPIKey,
			Endpoint: c.LLMEndpoint,
			Model:    c.LLMModel,
		},
	}
}

func valueOr(lookup LookupFunc, key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}
