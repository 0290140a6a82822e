// Package llm provides the completion-service client used for knowledge-base
// chat, clarifying-question generation and feedback application. The client
// is an interface so handlers and tests can substitute a scripted stub for
// the real Gemini backend.
package llm

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the completion-service configuration.
type Config struct {
	Provider Provider
	Model    string
	// Temperature and MaxOutputTokens tune the generation; the demo keeps
	// the original service's values.
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		Temperature:     0.7,
		MaxOutputTokens: 4096,
	}
}

// WithModel returns a copy of the config using the given model name.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}
