package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/vilaca/githubfetch/internal/api"
	"github.com/vilaca/githubfetch/internal/api/github"
	"github.com/vilaca/githubfetch/internal/cli"
	"github.com/vilaca/githubfetch/internal/config"
	"github.com/vilaca/githubfetch/internal/domain"
	"github.com/vilaca/githubfetch/internal/render"
	"github.com/vilaca/githubfetch/internal/service"
)

// version is set at build time with -ldflags "-X main.version=<version>".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run loads configuration, wires the application and executes one invocation.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to load configuration: %v\n", err)
		return cli.ExitFailure
	}

	app, err := buildApp(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return cli.ExitFailure
	}

	return app.Run(context.Background(), args)
}

// buildApp wires up all dependencies and returns the configured App.
// This is the composition root where all dependencies are created and injected.
func buildApp(cfg *config.Config, stdout, stderr io.Writer) (*cli.App, error) {
	logger := newLogger(cfg.Debug, stderr)

	// A zero timeout leaves the transport default in place.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	githubClient, err := github.NewClient(api.ClientConfig{
		BaseURL:   cfg.GitHubURL,
		UserAgent: fmt.Sprintf("%s/%s", domain.ToolName, version),
	}, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	profileService := service.NewProfileService(githubClient, !cfg.SkipStars, logger)

	// Styling is decided per stream so a redirected stdout stays plain.
	renderer := render.NewTextRenderer(render.RendererConfig{
		Styler: render.NewStyler(stdout, cfg.NoColor),
		Banner: cfg.Banner,
	})
	errRenderer := render.NewTextRenderer(render.RendererConfig{
		Styler: render.NewStyler(stderr, cfg.NoColor),
	})

	return cli.NewApp(cli.AppConfig{
		Stdout:      stdout,
		Stderr:      stderr,
		Renderer:    renderer,
		ErrRenderer: errRenderer,
		Service:     profileService,
		Version:     version,
		Logger:      logger,
	}), nil
}

// newLogger returns a diagnostics logger that is silent unless debug is on.
func newLogger(debug bool, stderr io.Writer) *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(stderr, "githubfetch: ", log.LstdFlags)
}
