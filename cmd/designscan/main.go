package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/designscan/internal/app"
)

type options struct {
	configPath   string
	envFile      string
	userAgent    string
	timeout      time.Duration
	maxRedirects int
	jsonPath     string
	pdfPath      string
	brief        bool
	llmBaseURL   string
	llmModel     string
	llmKey       string
	verbose      bool
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "designscan [url]",
		Short: "Extract design patterns from a web page",
		Long: `designscan fetches one web page and reports its superficial design
attributes: colors, heading hierarchy, navigation labels, buttons and
layout sections, followed by a fixed set of reference design tokens.

Without a URL it analyzes ` + app.DefaultURL + `.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      app.VersionString(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, o, args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return run(ctx, cfg, stdout)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Path to YAML or JSON config file")
	f.StringVar(&o.envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	f.StringVar(&o.userAgent, "user-agent", "", "Override the browser-like User-Agent header")
	f.DurationVar(&o.timeout, "timeout", 30*time.Second, "Request timeout for the page fetch (0 disables)")
	f.IntVar(&o.maxRedirects, "max-redirects", 5, "Maximum redirects to follow")
	f.StringVar(&o.jsonPath, "json", "", "Also write the result as JSON to this path ('-' for stdout)")
	f.StringVar(&o.pdfPath, "output.pdf", "", "Also render the report to this PDF path")
	f.BoolVar(&o.brief, "brief", false, "Ask an OpenAI-compatible model for a short design brief")
	f.StringVar(&o.llmBaseURL, "llm.base", "", "OpenAI-compatible base URL (env LLM_BASE_URL)")
	f.StringVar(&o.llmModel, "llm.model", "", "Model name (env LLM_MODEL)")
	f.StringVar(&o.llmKey, "llm.key", "", "API key (env LLM_API_KEY)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Verbose logging")
	return cmd
}

// buildConfig layers defaults, config file, environment and explicitly set
// flags, in that order of increasing precedence. A positional URL wins over
// everything.
func buildConfig(cmd *cobra.Command, o options, args []string) (app.Config, error) {
	if err := app.LoadEnvFiles(o.envFile); err != nil {
		return app.Config{}, fmt.Errorf("load env file: %w", err)
	}
	cfg := app.DefaultConfig()
	if o.configPath != "" {
		fc, err := app.LoadConfigFile(o.configPath)
		if err != nil {
			return app.Config{}, fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)

	f := cmd.Flags()
	if f.Changed("user-agent") {
		cfg.UserAgent = o.userAgent
	}
	if f.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if f.Changed("max-redirects") {
		cfg.MaxRedirects = o.maxRedirects
	}
	if f.Changed("json") {
		cfg.JSONPath = o.jsonPath
	}
	if f.Changed("output.pdf") {
		cfg.PDFPath = o.pdfPath
	}
	if f.Changed("brief") {
		cfg.Brief = o.brief
	}
	if f.Changed("llm.base") {
		cfg.LLMBaseURL = o.llmBaseURL
	}
	if f.Changed("llm.model") {
		cfg.LLMModel = o.llmModel
	}
	if f.Changed("llm.key") {
		cfg.LLMAPIKey = o.llmKey
	}
	if f.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if len(args) == 1 {
		cfg.URL = args[0]
	}
	return cfg, nil
}

func run(ctx context.Context, cfg app.Config, stdout io.Writer) error {
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a, err := app.New(cfg, stdout)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	res, err := a.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}
	// Exit code policy: a failed analysis is already reported on stdout and
	// still exits 0. Only setup and output errors are non-zero.
	if res.Status != app.StatusSuccess {
		log.Warn().Str("message", res.Message).Msg("analysis did not complete")
	}
	return nil
}
