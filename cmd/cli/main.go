package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/romanconv/internal/app"
	"github.com/specialistvlad/romanconv/internal/cli"
	"github.com/specialistvlad/romanconv/internal/config"
)

// main is the entrypoint for the romanconv application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW, logW, config.NewLoader())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// A panic from the converter means its tables are inconsistent. It is
	// reported as a fatal error and never retried.
	defer recoverFatal(&err)

	romanApp := app.NewApp(in, outW, logW, appConfig)
	return romanApp.Run(context.Background())
}

// recoverFatal turns a panic into an error stored in *err.
func recoverFatal(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("application panicked: %v", r)
	}
}
