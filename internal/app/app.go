// Package app wires the loader, planner, and emitters into one application
// instance and drives a full planning run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hdlforge/hdlforge/internal/config"
	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/printer"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	model   *config.Model
	printer *printer.Printer
}

// NewApp constructs the application: it builds an isolated logger and loads
// the build description through the injected loader. A failure to load the
// description is a fatal startup error and panics; the CLI entrypoint
// recovers and reports it.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.BuildPath)
	if err != nil {
		panic(fmt.Errorf("failed to load build description: %w", err))
	}
	logger.Debug("Build description loaded into unified model.",
		"codegen_targets", len(model.Codegens), "benchmark_targets", len(model.Benchmarks))

	return &App{
		outW:    outW,
		logger:  logger,
		model:   model,
		printer: printer.New(outW),
	}
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
