package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalPage = `<html><body><h1 class="hero-title">Maps</h1><button class="btn-primary">Go</button></body></html>`

func pageServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// Smoke test: positional URL is analyzed and the report reaches stdout.
func TestRootCmd_AnalyzesPositionalURL(t *testing.T) {
	srv := pageServer(t, minimalPage)
	out, err := execute(t, srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Typography patterns: 1", "Button patterns: 1", "Colors extracted: 0", "SCRAPING COMPLETED SUCCESSFULLY"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

// A failed fetch is reported but is not a command error.
func TestRootCmd_FetchFailureExitsCleanly(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	out, err := execute(t, srv.URL)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "Error fetching the website:") || !strings.Contains(out, "SCRAPING FAILED") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRootCmd_ConfigFileAndFlagPrecedence(t *testing.T) {
	srv := pageServer(t, minimalPage)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "designscan.yaml")
	jsonPath := filepath.Join(dir, "result.json")
	content := "url: " + srv.URL + "\noutput:\n  json: " + filepath.Join(dir, "ignored.json") + "\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := execute(t, "--config", cfgPath, "--json", jsonPath); err != nil {
		t.Fatalf("execute: %v", err)
	}
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("expected json at flag path: %v", err)
	}
	if !strings.Contains(string(b), `"status": "success"`) {
		t.Fatalf("unexpected json: %s", b)
	}
	if _, err := os.Stat(filepath.Join(dir, "ignored.json")); err == nil {
		t.Fatalf("flag should override config file output path")
	}
}

func TestRootCmd_BriefRequiresModel(t *testing.T) {
	t.Setenv("LLM_MODEL", "")
	srv := pageServer(t, minimalPage)
	if _, err := execute(t, "--brief", srv.URL); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	if _, err := execute(t, "https://a.example/", "https://b.example/"); err == nil {
		t.Fatalf("expected argument error")
	}
}
