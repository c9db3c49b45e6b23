// Package app wires configuration, logging, metrics, and the orchestrator
// into a runnable application and dispatches between the CLI, TUI, and quiet
// modes.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/viviai0214/fancy-hello-world/internal/cli"
	"github.com/viviai0214/fancy-hello-world/internal/config"
	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
	"github.com/viviai0214/fancy-hello-world/internal/logging"
	"github.com/viviai0214/fancy-hello-world/internal/metrics"
	"github.com/viviai0214/fancy-hello-world/internal/orchestration"
	"github.com/viviai0214/fancy-hello-world/internal/progress"
	"github.com/viviai0214/fancy-hello-world/internal/server"
	"github.com/viviai0214/fancy-hello-world/internal/sysmon"
	"github.com/viviai0214/fancy-hello-world/internal/tui"
	"github.com/viviai0214/fancy-hello-world/internal/ui"
)

// Application represents the fancyhello application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full command line, including the program name.
//   - errWriter: The writer for configuration errors and usage.
//
// Returns:
//   - *Application: The application, ready to Run.
//   - error: A configuration or flag parse error.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "fancyhello"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The base context.
//   - out: The writer for program output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.initLogging()
	ui.InitTheme(a.Config.NoColor || a.Config.Quiet)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	m := metrics.New()
	srvDone := a.startMetricsServer(ctx, m)

	opts := []orchestration.Option{
		orchestration.WithLogger(a.Logger),
		orchestration.WithMetrics(m),
	}
	if a.Config.Verbose {
		opts = append(opts, orchestration.WithObserver(progress.NewLoggingObserver(a.Logger)))
	}
	orchestrator := orchestration.New(opts...)

	var code int
	switch {
	case a.Config.TUI:
		code = tui.Run(ctx, orchestrator, a.Config.Delay, Version)
	case a.Config.Quiet:
		code = a.runQuiet(ctx, orchestrator, out)
	default:
		code = a.runCLI(ctx, orchestrator, out)
	}

	stopSignals()
	if srvDone != nil {
		<-srvDone
	}
	return code
}

// runCLI performs the full theatrical run.
func (a *Application) runCLI(ctx context.Context, o *orchestration.Orchestrator, out io.Writer) int {
	cli.PrintBanner(Version, out)

	reporter := cli.NewStageReporter(out, a.Config.Delay)
	result, err := o.Perform(ctx, reporter)
	if err != nil {
		return cli.HandleRunError(err, a.ErrWriter)
	}

	cli.PresentResult(result, sysmon.Sample(), out)
	return apperrors.ExitSuccess
}

// runQuiet performs the run with no ceremony and prints only the message.
func (a *Application) runQuiet(ctx context.Context, o *orchestration.Orchestrator, out io.Writer) int {
	result, err := o.Perform(ctx, orchestration.NullStageReporter{})
	if err != nil {
		return cli.HandleRunError(err, a.ErrWriter)
	}
	cli.PresentQuiet(result, out)
	return apperrors.ExitSuccess
}

// initLogging configures the global log level and the application logger.
func (a *Application) initLogging() {
	if a.Logger != nil {
		return
	}
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.Disabled)
		a.Logger = logging.NopLogger{}
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		a.Logger = logging.NewDefaultLogger()
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		a.Logger = logging.NopLogger{}
	}
}

// startMetricsServer starts the metrics endpoint when configured. It returns
// a channel closed when the server has shut down, or nil when disabled.
func (a *Application) startMetricsServer(ctx context.Context, m *metrics.Metrics) <-chan struct{} {
	if a.Config.MetricsListen == "" {
		return nil
	}
	done := make(chan struct{})
	srv := server.New(a.Config.MetricsListen, m.Registry(), a.Logger)
	go func() {
		defer close(done)
		if err := srv.Run(ctx); err != nil {
			a.Logger.Error("metrics server failed", err)
		}
	}()
	return done
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForStartupError maps a startup error to an exit code.
func ExitCodeForStartupError(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}
