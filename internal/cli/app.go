package cli

import (
	"context"
	"io"
	"log"

	"github.com/vilaca/githubfetch/internal/domain"
	"github.com/vilaca/githubfetch/internal/render"
	"github.com/vilaca/githubfetch/internal/service"
)

// Exit codes returned by App.Run.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ProfileService interface for account lookups (Dependency Inversion Principle).
type ProfileService interface {
	Fetch(ctx context.Context, subject string) (*domain.Summary, error)
}

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}

// AppConfig holds configuration for creating a new App.
type AppConfig struct {
	Stdout io.Writer
	Stderr io.Writer
	// Renderer writes to Stdout; ErrRenderer writes to Stderr.
	// They differ only in styling, which depends on each stream.
	Renderer    render.Renderer
	ErrRenderer render.Renderer
	Service     ProfileService
	Version     string
	Logger      Logger
}

// App runs one invocation of the command line tool.
type App struct {
	stdout      io.Writer
	stderr      io.Writer
	renderer    render.Renderer
	errRenderer render.Renderer
	service     ProfileService
	version     string
	logger      Logger
}

// NewApp creates a new App with injected dependencies.
func NewApp(cfg AppConfig) *App {
	errRenderer := cfg.ErrRenderer
	if errRenderer == nil {
		errRenderer = cfg.Renderer
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &App{
		stdout:      cfg.Stdout,
		stderr:      cfg.Stderr,
		renderer:    cfg.Renderer,
		errRenderer: errRenderer,
		service:     cfg.Service,
		version:     cfg.Version,
		logger:      logger,
	}
}

// Run interprets args (without the program name) and returns the exit code.
//
// Help and version are terminal: they are printed (help first when both are
// requested) and no lookup is made. A missing subject prints an advisory and
// still exits with ExitOK. Only a failed lookup exits with ExitFailure, and in
// that case nothing but the error is printed.
func (a *App) Run(ctx context.Context, args []string) int {
	inv := Parse(args)
	a.logger.Printf("Parsed arguments: help=%t version=%t subject=%q", inv.ShowHelp, inv.ShowVersion, inv.Subject)

	if inv.ShowHelp || inv.ShowVersion {
		if inv.ShowHelp {
			a.write(a.renderer.RenderHelp(a.stdout))
		}
		if inv.ShowVersion {
			a.write(a.renderer.RenderVersion(a.stdout, a.version))
		}
		return ExitOK
	}

	if inv.Subject == "" {
		a.write(a.errRenderer.RenderError(a.stderr, service.ErrEmptySubject))
		a.write(a.renderer.RenderHint(a.stdout))
		return ExitOK
	}

	summary, err := a.service.Fetch(ctx, inv.Subject)
	if err != nil {
		a.write(a.errRenderer.RenderError(a.stderr, err))
		return ExitFailure
	}

	a.write(a.renderer.RenderSummary(a.stdout, summary))
	return ExitOK
}

// write logs output failures; there is nowhere else to report them.
func (a *App) write(err error) {
	if err != nil {
		a.logger.Printf("failed to write output: %v", err)
	}
}
