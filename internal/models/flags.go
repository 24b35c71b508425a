package models

// Flags are handed to the embedded app once, when it initialises.
type Flags struct {
	BasePath    string   `json:"basePath"`
	LLMSettings Settings `json:"llmSettings"`
}
