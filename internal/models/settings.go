package models

// Settings holds the LLM connection the user configured in the app.
type Settings struct {
	APIKey   string `json:"apiKey"`
	Endpoint string `json:"endpoint"`
	Model    string `json:"model"`
}
