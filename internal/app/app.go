package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/designscan/internal/design"
	"github.com/hyperifyio/designscan/internal/fetch"
	"github.com/hyperifyio/designscan/internal/llm"
	"github.com/hyperifyio/designscan/internal/synth"
)

const briefTimeout = 60 * time.Second

// analyzeDocument runs the extraction passes; swapped in tests.
var analyzeDocument = design.Analyze

// pageGetter abstracts the single page fetch for tests.
type pageGetter interface {
	Get(ctx context.Context, url string) (*fetch.Page, error)
}

type App struct {
	cfg     Config
	fetcher pageGetter
	synth   *synth.Synthesizer
	out     io.Writer
}

// New validates cfg and wires the fetch client and, when enabled, the brief
// synthesizer. The report goes to out, or stdout when out is nil.
func New(cfg Config, out io.Writer) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	httpClient := newHTTPClient(cfg.Timeout)
	a := &App{
		cfg: cfg,
		fetcher: &fetch.Client{
			HTTPClient:      httpClient,
			UserAgent:       cfg.UserAgent,
			Timeout:         cfg.Timeout,
			RedirectMaxHops: cfg.MaxRedirects,
		},
		out: out,
	}
	if cfg.Brief {
		a.synth = &synth.Synthesizer{
			Client:       llm.NewOpenAIProvider(cfg.LLMBaseURL, cfg.LLMAPIKey, httpClient),
			SystemPrompt: cfg.BriefSystemPrompt,
		}
	}
	return a, nil
}

// Run analyzes the configured page, prints the report and writes any extra
// outputs. The Result carries the analysis outcome; the error is reserved
// for failures writing outputs.
func (a *App) Run(ctx context.Context) (Result, error) {
	res := a.Analyze(ctx)
	if res.Status == StatusSuccess && a.synth != nil {
		res.Brief = a.brief(ctx, res)
	}

	var report bytes.Buffer
	if err := WriteReport(&report, a.cfg.URL, res); err != nil {
		return res, fmt.Errorf("render report: %w", err)
	}
	if _, err := a.out.Write(report.Bytes()); err != nil {
		return res, fmt.Errorf("write report: %w", err)
	}
	if a.cfg.JSONPath != "" {
		if err := a.writeJSON(res); err != nil {
			return res, err
		}
	}
	if a.cfg.PDFPath != "" {
		if err := writeReportPDF(report.String(), a.cfg.PDFPath); err != nil {
			return res, fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.PDFPath).Msg("wrote pdf report")
	}
	return res, nil
}

// Analyze fetches the page and runs every extraction pass. It never returns
// a partial analysis: any failure yields an error Result.
func (a *App) Analyze(ctx context.Context) Result {
	log.Info().Str("url", a.cfg.URL).Msg("fetching page")
	page, err := a.fetcher.Get(ctx, a.cfg.URL)
	if err != nil {
		log.Error().Err(err).Msg("fetch failed")
		return errorResult(err)
	}
	log.Debug().Int("bytes", len(page.Body)).Str("content_type", page.ContentType).Msg("page received")

	res, err := analyzePage(page.Body)
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return errorResult(err)
	}
	return res
}

// analyzePage parses body and runs the passes. A panic in any pass is turned
// into an error so one bad page cannot take the process down.
func analyzePage(body []byte) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis panic: %v", r)
		}
	}()
	doc, err := design.ParseBytes(body)
	if err != nil {
		return Result{}, err
	}
	inv := design.Classes(doc)
	log.Debug().Int("classes", len(inv.All)).Int("relevant", len(inv.Relevant)).Msg("class inventory")

	analysis, err := analyzeDocument(doc)
	if err != nil {
		return Result{}, fmt.Errorf("analyze: %w", err)
	}
	return successResult(analysis, inv), nil
}

// brief asks the model for a design brief. Failures are logged and leave
// the result untouched.
func (a *App) brief(ctx context.Context, res Result) string {
	ctx, cancel := context.WithTimeout(ctx, briefTimeout)
	defer cancel()
	out, err := a.synth.Synthesize(ctx, synth.Input{
		URL:      a.cfg.URL,
		Analysis: *res.Analysis,
		Tokens:   res.DesignTokens,
		Model:    a.cfg.LLMModel,
	})
	if err != nil {
		log.Warn().Err(err).Msg("design brief failed; continuing without it")
		return ""
	}
	return out
}

func (a *App) writeJSON(res Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	b = append(b, '\n')
	if a.cfg.JSONPath == "-" {
		_, err = a.out.Write(b)
		return err
	}
	if err := os.WriteFile(a.cfg.JSONPath, b, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	log.Info().Str("out", a.cfg.JSONPath).Msg("wrote json result")
	return nil
}
