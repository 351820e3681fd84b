package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/strgraphgo/internal/ctxlog"
	"github.com/vk/strgraphgo/internal/hclgraph"
	"github.com/vk/strgraphgo/internal/op"
	"github.com/vk/strgraphgo/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *op.Registry
	config   *Config
}

// logLevels maps the config spellings to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the app's isolated logger from its config. The CLI
// rejects unknown levels and formats before they get here; anything else
// falls back to info-level text. The global default logger is never
// touched, so concurrent apps (and tests) stay independent.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	level, ok := logLevels[cfg.LogLevel]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// NewApp constructs the application with its own isolated logger and
// operation registry. When no modules are given, the built-in operation
// packs are registered.
func NewApp(outW io.Writer, cfg *Config, modules ...op.Module) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.")

	registry := op.NewRegistry()
	if len(modules) == 0 {
		RegisterDefaults(registry)
	} else {
		for _, mod := range modules {
			mod.Register(registry)
		}
	}
	logger.Debug("Operation modules registered.", "operations", len(registry.Names()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: registry,
		config:   cfg,
	}
}

// Registry returns the application's operation registry. This is primarily
// for testing.
func (a *App) Registry() *op.Registry {
	return a.registry
}

// loadDescription picks a loader by file extension: .json files go through
// the JSON loader, everything else (.hcl files, directories) is handed to
// the HCL loader.
func (a *App) loadDescription(ctx context.Context) (*schema.Description, error) {
	logger := ctxlog.FromContext(ctx)

	var loader schema.Loader
	if filepath.Ext(a.config.GraphPath) == ".json" {
		loader = schema.NewJSONLoader()
	} else {
		loader = hclgraph.NewLoader()
	}
	logger.Debug("Loading graph description.", "path", a.config.GraphPath)

	return loader.Load(ctx, a.config.GraphPath)
}
