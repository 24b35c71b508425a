package interop

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"tourgen/internal/models"
)

const (
	TagLoadSettings = "LoadSettings"
	TagLoadTours    = "LoadTours"
	TagSaveTour     = "SaveTour"
	TagSaveSettings = "SaveSettings"
)

var (
	// ErrUnknownTag is returned when a payload names a variant the host does not know.
	ErrUnknownTag = errors.New("interop: unknown message tag")
	// ErrMalformed is returned when a payload is not a tagged JSON object.
	ErrMalformed = errors.New("interop: malformed message")
)

// Outbound is a message sent by the app to the host. The set of
// implementations is closed: LoadSettings, LoadTours, SaveTour and SaveSettings.
type Outbound interface {
	Tag() string
	outbound()
}

type LoadSettings struct{}

type LoadTours struct{}

type SaveTour struct {
	Data models.Tour
}

type SaveSettings struct {
	Data models.Settings
}

func (LoadSettings) Tag() string { return TagLoadSettings }
func (LoadTours) Tag() string    { return TagLoadTours }
func (SaveTour) Tag() string     { return TagSaveTour }
func (SaveSettings) Tag() string { return TagSaveSettings }

func (LoadSettings) outbound() {}
func (LoadTours) outbound()    {}
func (SaveTour) outbound()     {}
func (SaveSettings) outbound() {}

func (m LoadSettings) MarshalJSON() ([]byte, error) { return marshalTagged(m.Tag(), nil, false) }
func (m LoadTours) MarshalJSON() ([]byte, error)    { return marshalTagged(m.Tag(), nil, false) }
func (m SaveTour) MarshalJSON() ([]byte, error)     { return marshalTagged(m.Tag(), m.Data, true) }
func (m SaveSettings) MarshalJSON() ([]byte, error) { return marshalTagged(m.Tag(), m.Data, true) }

// DecodeOutbound parses a raw payload emitted by the app.
func DecodeOutbound(payload []byte) (Outbound, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformed)
	}
	tag := root.Get("tag")
	if tag.Type != gjson.String {
		return nil, fmt.Errorf("%w: missing tag", ErrMalformed)
	}

	switch tag.String() {
	case TagLoadSettings:
		return LoadSettings{}, nil
	case TagLoadTours:
		return LoadTours{}, nil
	case TagSaveTour:
		var msg SaveTour
		if err := decodeData(root, &msg.Data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", TagSaveTour, err)
		}
		return msg, nil
	case TagSaveSettings:
		var msg SaveSettings
		if err := decodeData(root, &msg.Data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", TagSaveSettings, err)
		}
		return msg, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag.String())
	}
}

func decodeData(root gjson.Result, v any) error {
	data := root.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		return fmt.Errorf("%w: missing data", ErrMalformed)
	}
	return json.Unmarshal([]byte(data.Raw), v)
}

type envelope struct {
	Tag  string `json:"tag"`
	Data any    `json:"data"`
}

type bareEnvelope struct {
	Tag string `json:"tag"`
}

func marshalTagged(tag string, data any, withData bool) ([]byte, error) {
	if !withData {
		return json.Marshal(bareEnvelope{Tag: tag})
	}
	return json.Marshal(envelope{Tag: tag, Data: data})
}
