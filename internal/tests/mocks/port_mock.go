package mocks

import (
	"sync"

	"tourgen/internal/interop"
)

// PortMock delivers payloads synchronously and records every reply.
type PortMock struct {
	SendFunc func(msg interop.Inbound) error

	mu         sync.Mutex
	handler    func(payload []byte)
	Subscribed int
	Sent       []interop.Inbound
}

func (m *PortMock) Subscribe(handler func(payload []byte)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
	m.Subscribed++
}

func (m *PortMock) Send(msg interop.Inbound) error {
	if m.SendFunc != nil {
		return m.SendFunc(msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return nil
}

// Deliver passes payload to the subscribed handler, as the app emitting it would.
func (m *PortMock) Deliver(payload []byte) {
	m.mu.Lock()
	h := m.handler
	m.mu.Unlock()
	if h != nil {
		h(payload)
	}
}

func (m *PortMock) Replies() []interop.Inbound {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]interop.Inbound(nil), m.Sent...)
}
