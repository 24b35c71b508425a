package services

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const serviceName = "tourgen"

// SettingsAPIKeyAccount is the keyring account holding the LLM API key.
const SettingsAPIKeyAccount = "llm-settings"

// SecretStore keeps API keys out of the settings JSON.
type SecretStore interface {
	StoreApiKey(account string, apiKey string) error
	GetApiKey(account string) (string, error)
	DeleteApiKey(account string) error
}

// ErrSecretNotFound is returned by GetApiKey when nothing is stored.
var ErrSecretNotFound = errors.New("secret not found")

type KeyringService struct {
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) StoreApiKey(account string, apiKey string) error {
	if account == "" {
		return errors.New("account is required")
	}
	if apiKey == "" {
		return s.DeleteApiKey(account)
	}
	return keyring.Set(serviceName, account, apiKey)
}

func (s *KeyringService) GetApiKey(account string) (string, error) {
	if account == "" {
		return "", errors.New("account is required")
	}
	key, err := keyring.Get(serviceName, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrSecretNotFound
	}
	return key, err
}

// DeleteApiKey is a no-op when nothing is stored.
func (s *KeyringService) DeleteApiKey(account string) error {
	if account == "" {
		return errors.New("account is required")
	}
	err := keyring.Delete(serviceName, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
