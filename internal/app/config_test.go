package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_TargetsFixedURL(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.URL != DefaultURL {
		t.Fatalf("URL=%q, want %q", cfg.URL, DefaultURL)
	}
	if !strings.Contains(cfg.UserAgent, "Mozilla/5.0") {
		t.Fatalf("expected browser user agent, got %q", cfg.UserAgent)
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "designscan.yaml")
	content := `url: https://example.com/
timeout: 45s
maxRedirects: 3
output:
  json: out.json
  pdf: out.pdf
brief:
  enable: true
llm:
  base: http://localhost:8081/v1
  model: test-model
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := DefaultConfig()
	ApplyFileConfig(&cfg, fc)
	if cfg.URL != "https://example.com/" || cfg.Timeout != 45*time.Second || cfg.MaxRedirects != 3 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.JSONPath != "out.json" || cfg.PDFPath != "out.pdf" {
		t.Fatalf("unexpected outputs: %+v", cfg)
	}
	if !cfg.Brief || cfg.LLMModel != "test-model" || cfg.LLMBaseURL != "http://localhost:8081/v1" {
		t.Fatalf("unexpected brief settings: %+v", cfg)
	}
	// Unset fields keep their defaults
	if cfg.UserAgent != DefaultConfig().UserAgent {
		t.Fatalf("user agent should keep default, got %q", cfg.UserAgent)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "designscan.json")
	if err := os.WriteFile(path, []byte(`{"url":"https://example.org/","userAgent":"ua-test"}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.URL != "https://example.org/" || fc.UserAgent != "ua-test" {
		t.Fatalf("unexpected file config: %+v", fc)
	}
}

func loadTimeout(t *testing.T, name, content string) (time.Duration, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		return 0, err
	}
	cfg := DefaultConfig()
	ApplyFileConfig(&cfg, fc)
	return cfg.Timeout, nil
}

func TestLoadConfigFile_TimeoutForms(t *testing.T) {
	cases := []struct {
		name, content string
		want          time.Duration
	}{
		{"a.json", `{"timeout":"10s"}`, 10 * time.Second},
		{"b.json", `{"timeout":15}`, 15 * time.Second},
		{"c.json", `{"timeout":"0s"}`, 0},
		{"d.yaml", "timeout: 2m\n", 2 * time.Minute},
		{"e.yaml", "timeout: 20\n", 20 * time.Second},
		{"f.yaml", "timeout: 0\n", 0},
		{"g.yaml", "url: https://example.com/\n", defaultTimeout},
	}
	for _, tc := range cases {
		got, err := loadTimeout(t, tc.name, tc.content)
		if err != nil {
			t.Fatalf("%s: load: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: timeout=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestLoadConfigFile_BadTimeout(t *testing.T) {
	if _, err := loadTimeout(t, "bad.json", `{"timeout":"soon"}`); err == nil {
		t.Fatalf("expected error for unparsable json timeout")
	}
	if _, err := loadTimeout(t, "bad.yaml", "timeout: soon\n"); err == nil {
		t.Fatalf("expected error for unparsable yaml timeout")
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("url: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DESIGNSCAN_URL", "https://env.example/")
	t.Setenv("DESIGNSCAN_TIMEOUT", "5s")
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("VERBOSE", "yes")
	cfg := DefaultConfig()
	cfg.URL = "https://file.example/"
	ApplyEnvOverrides(&cfg)
	if cfg.URL != "https://env.example/" {
		t.Fatalf("env should override file url, got %q", cfg.URL)
	}
	if cfg.Timeout != 5*time.Second || cfg.LLMModel != "env-model" || !cfg.Verbose {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestApplyEnvOverrides_IgnoresBadDuration(t *testing.T) {
	t.Setenv("DESIGNSCAN_TIMEOUT", "soon")
	cfg := DefaultConfig()
	ApplyEnvOverrides(&cfg)
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestValidateConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"empty url":        func(c *Config) { c.URL = " " },
		"negative timeout": func(c *Config) { c.Timeout = -time.Second },
		"brief w/o model":  func(c *Config) { c.Brief = true },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := ValidateConfig(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	unset(t, "DESIGNSCAN_TEST_FOO", "DESIGNSCAN_TEST_BAR")
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "\n# sample dotenv file\nDESIGNSCAN_TEST_FOO=alpha\nDESIGNSCAN_TEST_BAR=\"beta\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	if err := LoadEnvFiles(envPath, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("DESIGNSCAN_TEST_FOO"); got != "alpha" {
		t.Fatalf("FOO=%q, want alpha", got)
	}
	if got := os.Getenv("DESIGNSCAN_TEST_BAR"); got != "beta" {
		t.Fatalf("BAR=%q, want beta", got)
	}
}

func TestLoadEnvFiles_KeepsExistingValues(t *testing.T) {
	t.Setenv("DESIGNSCAN_TEST_KEEP", "process")
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("DESIGNSCAN_TEST_KEEP=file\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	if err := LoadEnvFiles(envPath); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("DESIGNSCAN_TEST_KEEP"); got != "process" {
		t.Fatalf("process env should win, got %q", got)
	}
}

func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_ = os.Unsetenv(k)
		key := k
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
}
