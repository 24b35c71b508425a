package interop

import (
	"encoding/json"

	"tourgen/internal/models"
)

const (
	TagSettingsLoaded = "SettingsLoaded"
	TagToursLoaded    = "ToursLoaded"
	TagSettingsSaved  = "SettingsSaved"
)

// Inbound is a message sent by the host back into the app.
type Inbound interface {
	Tag() string
	inbound()
}

// SettingsLoaded carries nil when no settings were ever saved.
type SettingsLoaded struct {
	Data *models.Settings
}

// ToursLoaded always encodes its data as an array, never null.
type ToursLoaded struct {
	Data []models.Tour
}

type SettingsSaved struct{}

func (SettingsLoaded) Tag() string { return TagSettingsLoaded }
func (ToursLoaded) Tag() string    { return TagToursLoaded }
func (SettingsSaved) Tag() string  { return TagSettingsSaved }

func (SettingsLoaded) inbound() {}
func (ToursLoaded) inbound()    {}
func (SettingsSaved) inbound()  {}

func (m SettingsLoaded) MarshalJSON() ([]byte, error) {
	return marshalTagged(m.Tag(), m.Data, true)
}

func (m ToursLoaded) MarshalJSON() ([]byte, error) {
	tours := m.Data
	if tours == nil {
		tours = []models.Tour{}
	}
	return marshalTagged(m.Tag(), tours, true)
}

func (m SettingsSaved) MarshalJSON() ([]byte, error) {
	return marshalTagged(m.Tag(), nil, false)
}

// EncodeInbound renders msg in its wire form.
func EncodeInbound(msg Inbound) ([]byte, error) {
	return json.Marshal(msg)
}
