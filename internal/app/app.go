package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Results and prompts are
// written to outW and log records to logW, so an interactive session is not
// interleaved with logs unless both point at the same stream.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config) *App {
	logger := NewLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: appConfig,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
