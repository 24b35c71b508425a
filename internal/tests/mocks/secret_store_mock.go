package mocks

import "tourgen/internal/services"

type SecretStoreMock struct {
	StoreApiKeyFunc  func(account, apiKey string) error
	GetApiKeyFunc    func(account string) (string, error)
	DeleteApiKeyFunc func(account string) error

	Secrets map[string]string
}

func NewSecretStoreMock() *SecretStoreMock {
	return &SecretStoreMock{Secrets: map[string]string{}}
}

func (m *SecretStoreMock) StoreApiKey(account, apiKey string) error {
	if m.StoreApiKeyFunc != nil {
		return m.StoreApiKeyFunc(account, apiKey)
	}
	if apiKey == "" {
		return m.DeleteApiKey(account)
	}
	m.Secrets[account] = apiKey
	return nil
}

func (m *SecretStoreMock) GetApiKey(account string) (string, error) {
	if m.GetApiKeyFunc != nil {
		return m.GetApiKeyFunc(account)
	}
	key, ok := m.Secrets[account]
	if !ok {
		return "", services.ErrSecretNotFound
	}
	return key, nil
}

func (m *SecretStoreMock) DeleteApiKey(account string) error {
	if m.DeleteApiKeyFunc != nil {
		return m.DeleteApiKeyFunc(account)
	}
	delete(m.Secrets, account)
	return nil
}
