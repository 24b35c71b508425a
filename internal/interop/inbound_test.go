package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourgen/internal/models"
)

func TestEncodeInbound(t *testing.T) {
	tests := []struct {
		name string
		msg  Inbound
		want string
	}{
		{"settings saved has no data", SettingsSaved{}, `{"tag":"SettingsSaved"}`},
		{"missing settings are null", SettingsLoaded{}, `{"tag":"SettingsLoaded","data":null}`},
		{
			"settings",
			SettingsLoaded{Data: &models.Settings{APIKey: "k", Endpoint: "https://x.example", Model: "m"}},
			`{"tag":"SettingsLoaded","data":{"apiKey":"k","endpoint":"https://x.example","model":"m"}}`,
		},
		{"nil tours are an empty array", ToursLoaded{}, `{"tag":"ToursLoaded","data":[]}`},
		{
			"tours",
			ToursLoaded{Data: []models.Tour{{ID: "a"}}},
			`{"tag":"ToursLoaded","data":[{"id":"a","prompt":"","description":"","coordinates":{"latitude":0,"longitude":0},"stops":[]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeInbound(tt.msg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
