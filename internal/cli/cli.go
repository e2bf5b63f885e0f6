package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/romanconv/internal/app"
	"github.com/specialistvlad/romanconv/internal/config"
	"github.com/specialistvlad/romanconv/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig holds the settings read from the environment. Its values become
// the flag defaults.
type envConfig struct {
	ConfigPath string `env:"ROMANCONV_CONFIG"`
	Mode       string `env:"ROMANCONV_MODE"`
	MaxDecimal int    `env:"ROMANCONV_MAX_DECIMAL" envDefault:"0"`
	LogFormat  string `env:"ROMANCONV_LOG_FORMAT"  envDefault:"text"`
	LogLevel   string `env:"ROMANCONV_LOG_LEVEL"   envDefault:"info"`
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are resolved with flags taking precedence over the config file,
// the config file over the environment, and the environment over defaults.
// The config loader logs to logW at the log level and format given by flags
// or the environment.
func Parse(args []string, output, logW io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse env: %v", err)}
	}

	flagSet := flag.NewFlagSet("romanconv", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
romanconv - Convert between Roman numerals and decimal numbers.

Usage:
  romanconv [options] [decode|encode] [VALUE]

Arguments:
  decode|encode
    Conversion direction. Without one, an interactive menu asks for it.
  VALUE
    Numeral or decimal to convert once. Without one, the value is prompted for.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", envCfg.ConfigPath, "Path to an HCL config file or a directory of .hcl files.")
	cFlag := flagSet.String("c", "", "Path to an HCL config file or directory (shorthand).")
	modeFlag := flagSet.String("mode", envCfg.Mode, "Conversion direction. Options: 'decode' or 'encode'.")
	maxDecimalFlag := flagSet.Int("max-decimal", envCfg.MaxDecimal, "Largest decimal accepted for encoding. 0 is unlimited.")
	logFormatFlag := flagSet.String("log-format", envCfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envCfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	configPath := *configFlag
	if *cFlag != "" {
		configPath = *cFlag
	}

	if configPath != "" {
		if loader == nil {
			loader = config.NewLoader()
		}
		bootstrap := app.NewLogger(strings.ToLower(*logLevelFlag), strings.ToLower(*logFormatFlag), logW)
		ctx := ctxlog.WithLogger(context.Background(), bootstrap)
		file, err := loader.Load(ctx, configPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Config file loaded.", "path", configPath)

		if file.Mode != nil && !explicit["mode"] {
			*modeFlag = *file.Mode
		}
		if file.MaxDecimal != nil && !explicit["max-decimal"] {
			*maxDecimalFlag = *file.MaxDecimal
		}
		if file.LogFormat != nil && !explicit["log-format"] {
			*logFormatFlag = *file.LogFormat
		}
		if file.LogLevel != nil && !explicit["log-level"] {
			*logLevelFlag = *file.LogLevel
		}
	}

	mode := strings.ToLower(strings.TrimSpace(*modeFlag))
	input := ""
	oneShot := false

	positional := flagSet.Args()
	if len(positional) > 2 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: %q", positional)}
	}
	if len(positional) > 0 {
		command := strings.ToLower(positional[0])
		if command != "decode" && command != "encode" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q: must be 'decode' or 'encode'", positional[0])}
		}
		mode = command
	}
	if len(positional) == 2 {
		input = positional[1]
		oneShot = true
	}
	slog.Debug("Conversion request determined.", "mode", mode, "one_shot", oneShot)

	appConfig, err := app.NewConfig(app.Config{
		Mode:       mode,
		Input:      input,
		OneShot:    oneShot,
		MaxDecimal: *maxDecimalFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}
