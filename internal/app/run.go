package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/specialistvlad/romanconv/internal/ctxlog"
	"github.com/specialistvlad/romanconv/internal/roman"
	"github.com/specialistvlad/romanconv/internal/shell"
)

// Run executes the main application logic: a single conversion when the
// config carries one, otherwise an interactive session.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode, "one_shot", a.config.OneShot)

	mode, err := shell.ParseMode(a.config.Mode)
	if err != nil {
		return err
	}

	if a.config.OneShot {
		return a.convert(ctx, mode, a.config.Input)
	}

	sh := shell.New(a.in, a.outW, shell.Options{Mode: mode, MaxDecimal: a.config.MaxDecimal})
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// convert performs one conversion of input and writes the result.
func (a *App) convert(ctx context.Context, mode shell.Mode, input string) error {
	logger := ctxlog.FromContext(ctx)

	var n *roman.Numeral
	switch mode {
	case shell.ModeDecode:
		parsed, err := roman.Parse(input)
		if err != nil {
			return err
		}
		n = parsed
		fmt.Fprintln(a.outW, shell.FormatDecoded(n))
	case shell.ModeEncode:
		value, err := strconv.Atoi(input)
		if err != nil {
			return fmt.Errorf("invalid decimal %q: must be an integer", input)
		}
		if a.config.MaxDecimal > 0 && value > a.config.MaxDecimal {
			return fmt.Errorf("invalid decimal %d: must not exceed %d", value, a.config.MaxDecimal)
		}
		encoded, err := roman.Encode(value)
		if err != nil {
			return err
		}
		n = encoded
		fmt.Fprintln(a.outW, shell.FormatEncoded(n))
	default:
		return fmt.Errorf("a one-shot conversion needs a mode, got %q", mode.String())
	}

	logger.Info("Conversion finished.", "mode", mode.String(), "numeral", n.Text(), "value", n.Value())
	return nil
}
