package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	URL          string        `yaml:"url" json:"url"`
	UserAgent    string        `yaml:"userAgent" json:"userAgent"`
	Timeout      *Duration     `yaml:"timeout" json:"timeout"`
	MaxRedirects int           `yaml:"maxRedirects" json:"maxRedirects"`
	Verbose      bool          `yaml:"verbose" json:"verbose"`

	Output struct {
		JSON string `yaml:"json" json:"json"`
		PDF  string `yaml:"pdf" json:"pdf"`
	} `yaml:"output" json:"output"`

	Brief struct {
		Enable       bool   `yaml:"enable" json:"enable"`
		SystemPrompt string `yaml:"systemPrompt" json:"systemPrompt"`
	} `yaml:"brief" json:"brief"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`
}

// Duration is a config-file duration. Both YAML and JSON accept Go duration
// strings such as "45s"; a bare integer is taken as seconds. A present zero
// disables the timeout.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return d.parse(s)
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration: want a string like \"30s\" or integer seconds: %w", err)
	}
	*d = Duration(time.Duration(n) * time.Second)
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n) * time.Second)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	*d = Duration(v)
	return nil
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays every value the file sets onto cfg. It runs before
// env and flags, so it only ever replaces defaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if fc.URL != "" {
		cfg.URL = fc.URL
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.Timeout != nil {
		cfg.Timeout = time.Duration(*fc.Timeout)
	}
	if fc.MaxRedirects > 0 {
		cfg.MaxRedirects = fc.MaxRedirects
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	if fc.Output.JSON != "" {
		cfg.JSONPath = fc.Output.JSON
	}
	if fc.Output.PDF != "" {
		cfg.PDFPath = fc.Output.PDF
	}
	if fc.Brief.Enable {
		cfg.Brief = true
	}
	if fc.Brief.SystemPrompt != "" {
		cfg.BriefSystemPrompt = fc.Brief.SystemPrompt
	}
	if fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
}

// ValidateConfig performs minimal validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return errors.New("config: url is required")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return fmt.Errorf("config: invalid url: %w", err)
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	if cfg.MaxRedirects < 0 {
		return errors.New("config: negative max redirects is not allowed")
	}
	if cfg.Brief && strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required for --brief (or set LLM_MODEL)")
	}
	return nil
}
