package mocks

import (
	"context"
	"sort"
	"sync"
)

// StorageRepositoryMock is an in-memory StorageRepository. Set a Func field
// to override one method.
type StorageRepositoryMock struct {
	GetItemFunc    func(ctx context.Context, key string) (string, bool, error)
	SetItemFunc    func(ctx context.Context, key, value string) error
	RemoveItemFunc func(ctx context.Context, key string) error
	KeysFunc       func(ctx context.Context) ([]string, error)
	ClearFunc      func(ctx context.Context) error

	mu     sync.Mutex
	Items  map[string]string
	Writes int
}

func NewStorageRepositoryMock() *StorageRepositoryMock {
	return &StorageRepositoryMock{Items: map[string]string{}}
}

func (m *StorageRepositoryMock) GetItem(ctx context.Context, key string) (string, bool, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Items[key]
	return v, ok, nil
}

func (m *StorageRepositoryMock) SetItem(ctx context.Context, key, value string) error {
	if m.SetItemFunc != nil {
		return m.SetItemFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Items == nil {
		m.Items = map[string]string{}
	}
	m.Items[key] = value
	m.Writes++
	return nil
}

func (m *StorageRepositoryMock) RemoveItem(ctx context.Context, key string) error {
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Items, key)
	return nil
}

func (m *StorageRepositoryMock) Keys(ctx context.Context) ([]string, error) {
	if m.KeysFunc != nil {
		return m.KeysFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.Items))
	for k := range m.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *StorageRepositoryMock) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Items = map[string]string{}
	return nil
}
