package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/romanconv/internal/ctxlog"
	"github.com/specialistvlad/romanconv/internal/roman"
)

// ErrInputClosed is returned when input ends before a valid value was read.
var ErrInputClosed = errors.New("input closed before a valid value was read")

const menuText = `Would you like to:
 (1) convert from Roman numerals to decimal or
 (2) convert from decimal to Roman numerals?
(1/2): `

// Options configures a Shell.
type Options struct {
	// Mode preselects a direction. ModeMenu asks the user.
	Mode Mode
	// MaxDecimal is the largest value accepted for encoding. 0 means no limit.
	MaxDecimal int
}

// Shell reads whitespace-separated tokens from an input stream and writes
// prompts and results to an output stream.
type Shell struct {
	scanner *bufio.Scanner
	out     io.Writer
	opts    Options
}

// New creates a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Shell{scanner: scanner, out: out, opts: opts}
}

// Run asks for a direction unless one is preselected, then converts one value.
// It returns nil after printing a result, ErrInputClosed if the input ends
// first, or the context's error if ctx is done before a prompt.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Shell started.", "mode", s.opts.Mode.String(), "max_decimal", s.opts.MaxDecimal)

	mode := s.opts.Mode
	if mode == ModeMenu {
		var err error
		if mode, err = s.chooseMode(ctx); err != nil {
			return err
		}
	}

	switch mode {
	case ModeDecode:
		return s.readNumeral(ctx)
	case ModeEncode:
		return s.readDecimal(ctx)
	default:
		return fmt.Errorf("unsupported mode %s", mode)
	}
}

// chooseMode shows the menu until the user picks 1 or 2.
func (s *Shell) chooseMode(ctx context.Context) (Mode, error) {
	for {
		token, err := s.prompt(ctx, menuText)
		if err != nil {
			return ModeMenu, err
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			s.printInvalidInput("Input must be a number!")
			continue
		}
		switch choice {
		case 1:
			return ModeDecode, nil
		case 2:
			return ModeEncode, nil
		default:
			s.printInvalidInput("Input must be 1 or 2!")
		}
	}
}

// readNumeral prompts for a Roman numeral until one validates, then prints
// its decimal form.
func (s *Shell) readNumeral(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	for {
		token, err := s.prompt(ctx, "Enter a Roman numeral: ")
		if err != nil {
			return err
		}

		n, err := roman.Parse(token)
		if err != nil {
			logger.Debug("Numeral rejected.", "input", token, "error", err)
			s.printInvalidInput(err.Error())
			continue
		}

		logger.Debug("Numeral decoded.", "numeral", n.Text(), "value", n.Value())
		fmt.Fprintln(s.out, FormatDecoded(n))
		return nil
	}
}

// readDecimal prompts for a decimal number until one can be encoded, then
// prints its Roman numeral form.
func (s *Shell) readDecimal(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	for {
		token, err := s.prompt(ctx, "Enter a decimal number: ")
		if err != nil {
			return err
		}

		value, err := strconv.Atoi(token)
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(token, "-") {
			s.printInvalidInput(fmt.Sprintf("Input must not exceed %d!", s.limit()))
			continue
		}
		if err != nil {
			s.printInvalidInput("Input must be an integer!")
			continue
		}
		if s.opts.MaxDecimal > 0 && value > s.opts.MaxDecimal {
			s.printInvalidInput(fmt.Sprintf("Input must not exceed %d!", s.opts.MaxDecimal))
			continue
		}

		n, err := roman.Encode(value)
		if errors.Is(err, roman.ErrNegativeValue) {
			s.printInvalidInput("Input must not be negative!")
			continue
		}
		if errors.Is(err, roman.ErrValueTooLarge) {
			s.printInvalidInput(fmt.Sprintf("Input must not exceed %d!", roman.MaxValue))
			continue
		}
		if err != nil {
			return err
		}

		logger.Debug("Decimal encoded.", "value", value, "numeral", n.Text())
		fmt.Fprintln(s.out, FormatEncoded(n))
		return nil
	}
}

// limit is the largest decimal the shell will encode.
func (s *Shell) limit() int {
	if s.opts.MaxDecimal > 0 && s.opts.MaxDecimal < roman.MaxValue {
		return s.opts.MaxDecimal
	}
	return roman.MaxValue
}

// prompt writes text and returns the next input token.
func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(s.out, text)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.scanner.Text(), nil
}

func (s *Shell) printInvalidInput(message string) {
	fmt.Fprintln(s.out, "Invalid input: "+message)
}

// FormatDecoded renders the result of converting a numeral to decimal.
func FormatDecoded(n *roman.Numeral) string {
	return fmt.Sprintf("The decimal form of %s is: %d", n.Text(), n.Value())
}

// FormatEncoded renders the result of converting a decimal to a numeral.
func FormatEncoded(n *roman.Numeral) string {
	return fmt.Sprintf("The Roman numeral form of %d is: %s", n.Value(), n.Text())
}
