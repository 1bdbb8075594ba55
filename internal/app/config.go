package app

import (
	"time"

	"github.com/hyperifyio/designscan/internal/fetch"
)

// DefaultURL is the page analyzed when no target is given.
const DefaultURL = "https://mapsplatform.google.com/"

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRedirects = 5
)

// Config holds runtime configuration for the application.
type Config struct {
	// Target
	URL       string
	UserAgent string

	// Transport
	Timeout      time.Duration
	MaxRedirects int

	// Outputs besides the text report on stdout
	JSONPath string
	PDFPath  string

	// Optional design brief via an OpenAI-compatible model
	Brief             bool
	LLMBaseURL        string
	LLMModel          string
	LLMAPIKey         string
	BriefSystemPrompt string

	Verbose bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		URL:          DefaultURL,
		UserAgent:    fetch.DefaultUserAgent,
		Timeout:      defaultTimeout,
		MaxRedirects: defaultMaxRedirects,
	}
}
