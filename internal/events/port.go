package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"tourgen/internal/interop"
)

// InteropToApp carries the host's replies.
const InteropToApp = "interop:toApp"

// ErrNotSubscribed is returned by Dispatch before anything subscribed.
var ErrNotSubscribed = errors.New("port has no subscriber")

// Port is the channel pair between the host and the embedded app.
type Port interface {
	// Subscribe registers handler for outbound payloads. Payloads are
	// delivered one at a time, in the order Dispatch is called.
	Subscribe(handler func(payload []byte))
	Send(msg interop.Inbound) error
}

// EmitFunc matches runtime.EventsEmit.
type EmitFunc func(ctx context.Context, eventName string, optionalData ...interface{})

// WailsPort implements Port for a Wails window. Outbound messages arrive
// through a bound method, since Wails runs every event listener in its own
// goroutine and would lose their order. The frontend awaits each Dispatch
// before issuing the next one.
type WailsPort struct {
	ctx  context.Context
	log  logrus.FieldLogger
	emit EmitFunc

	once    sync.Once
	mu      sync.Mutex
	handler func(payload []byte)
}

// NewWailsPort must be given the context Wails passes to OnStartup.
func NewWailsPort(ctx context.Context, log logrus.FieldLogger) *WailsPort {
	return NewPort(ctx, log, runtime.EventsEmit)
}

// NewPort builds a port that sends replies through emit.
func NewPort(ctx context.Context, log logrus.FieldLogger, emit EmitFunc) *WailsPort {
	return &WailsPort{
		ctx:  ctx,
		log:  log.WithField("component", "port"),
		emit: emit,
	}
}

// Subscribe only takes effect on its first call. The subscription lasts
// for the lifetime of the port.
func (p *WailsPort) Subscribe(handler func(payload []byte)) {
	p.once.Do(func() {
		p.mu.Lock()
		p.handler = handler
		p.mu.Unlock()
	})
}

// Dispatch hands one outbound message to the subscriber and returns once it
// has been handled, replies included. Calls never overlap.
func (p *WailsPort) Dispatch(data interface{}) error {
	payload, err := EncodePayload(data)
	if err != nil {
		p.log.WithError(err).Warn("dropping outbound message")
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handler == nil {
		return ErrNotSubscribed
	}
	p.handler(payload)
	return nil
}

func (p *WailsPort) Send(msg interop.Inbound) error {
	if p.ctx == nil || p.emit == nil {
		return errors.New("port is not started")
	}
	p.log.WithField("tag", msg.Tag()).Debug("sending inbound message")
	p.emit(p.ctx, InteropToApp, msg)
	return nil
}

// EncodePayload turns a message received from the frontend back into the
// JSON it was built from. A string is taken as JSON text.
func EncodePayload(data interface{}) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return nil, errors.New("message carried no data")
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode message: %w", err)
		}
		return payload, nil
	}
}
