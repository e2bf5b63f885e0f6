package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/romanconv/internal/app"
	"github.com/specialistvlad/romanconv/internal/config"
	"github.com/specialistvlad/romanconv/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "romanconv.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up config file")
	return path
}

func parse(t *testing.T, args ...string) (*app.Config, bool, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(args, out, io.Discard, config.NewLoader())
	return cfg, shouldExit, out.String(), err
}

func TestParse_Defaults(t *testing.T) {
	cfg, shouldExit, _, err := parse(t)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, &app.Config{LogFormat: "text", LogLevel: "info"}, cfg)
}

func TestParse_Commands(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected app.Config
	}{
		{
			name:     "interactive decode",
			args:     []string{"decode"},
			expected: app.Config{Mode: "decode", LogFormat: "text", LogLevel: "info"},
		},
		{
			name:     "one-shot decode",
			args:     []string{"DECODE", "xiv"},
			expected: app.Config{Mode: "decode", Input: "xiv", OneShot: true, LogFormat: "text", LogLevel: "info"},
		},
		{
			name:     "one-shot encode with negative value",
			args:     []string{"encode", "-5"},
			expected: app.Config{Mode: "encode", Input: "-5", OneShot: true, LogFormat: "text", LogLevel: "info"},
		},
		{
			name:     "mode flag",
			args:     []string{"-mode", "Encode", "-max-decimal", "3999", "-log-level", "DEBUG", "-log-format", "json"},
			expected: app.Config{Mode: "encode", MaxDecimal: 3999, LogFormat: "json", LogLevel: "debug"},
		},
		{
			name:     "positional command overrides mode flag",
			args:     []string{"-mode", "encode", "decode", "X"},
			expected: app.Config{Mode: "decode", Input: "X", OneShot: true, LogFormat: "text", LogLevel: "info"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, _, err := parse(t, tc.args...)

			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, &tc.expected, cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	cfg, shouldExit, out, err := parse(t, "-h")

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "-max-decimal")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "unknown flag", args: []string{"--not-a-flag"}, errContains: "flag provided but not defined"},
		{name: "unknown command", args: []string{"convert", "X"}, errContains: "unknown command"},
		{name: "too many arguments", args: []string{"decode", "X", "V"}, errContains: "too many arguments"},
		{name: "invalid mode flag", args: []string{"-mode", "sideways"}, errContains: "invalid mode"},
		{name: "invalid log format", args: []string{"-log-format", "xml"}, errContains: "invalid log-format"},
		{name: "invalid log level", args: []string{"-log-level", "trace"}, errContains: "invalid log-level"},
		{name: "negative maximum", args: []string{"-max-decimal", "-1"}, errContains: "must not be negative"},
		{name: "missing config file", args: []string{"-config", "/does/not/exist.hcl"}, errContains: "error accessing config path"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, _, err := parse(t, tc.args...)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}

func TestParse_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
log_level   = "warn"
log_format  = "json"
mode        = "encode"
max_decimal = decimal("MMMCMXCIX")
`)

	cfg, _, _, err := parse(t, "-c", path)

	require.NoError(t, err)
	assert.Equal(t, &app.Config{Mode: "encode", MaxDecimal: 3999, LogFormat: "json", LogLevel: "warn"}, cfg)
}

func TestParse_Precedence(t *testing.T) {
	t.Setenv("ROMANCONV_LOG_LEVEL", "error")
	t.Setenv("ROMANCONV_LOG_FORMAT", "json")
	t.Setenv("ROMANCONV_MAX_DECIMAL", "50")
	t.Setenv("ROMANCONV_CONFIG", writeConfig(t, `
log_format  = "text"
max_decimal = 100
`))

	cfg, _, _, err := parse(t, "-max-decimal", "200")

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "environment should apply when neither file nor flag sets it")
	assert.Equal(t, "text", cfg.LogFormat, "config file should override the environment")
	assert.Equal(t, 200, cfg.MaxDecimal, "flags should override the config file")
}

func TestParse_InvalidEnvironment(t *testing.T) {
	t.Setenv("ROMANCONV_MAX_DECIMAL", "lots")

	_, _, _, err := parse(t)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "parse env")
}

// recordingLoader returns an empty File and keeps the context it was given.
type recordingLoader struct {
	ctx context.Context
}

func (l *recordingLoader) Load(ctx context.Context, paths ...string) (*config.File, error) {
	l.ctx = ctx
	return &config.File{}, nil
}

func TestParse_ConfigLoaderLogging(t *testing.T) {
	path := writeConfig(t, `mode = "decode"`)

	testCases := []struct {
		name      string
		args      []string
		wantDebug bool
	}{
		{name: "debug level flag", args: []string{"-log-level", "debug", "-c", path}, wantDebug: true},
		{name: "default level", args: []string{"-c", path}, wantDebug: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			logs := &bytes.Buffer{}

			// --- Act ---
			cfg, _, err := Parse(tc.args, io.Discard, logs, config.NewLoader())

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, "decode", cfg.Mode)
			if tc.wantDebug {
				assert.Contains(t, logs.String(), "HCL config loader started.")
				assert.Contains(t, logs.String(), "Config file merged.")
				assert.Contains(t, logs.String(), "app=romanconv")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestParse_ConfigLoaderGetsBootstrapLogger(t *testing.T) {
	t.Setenv("ROMANCONV_LOG_LEVEL", "debug")
	t.Setenv("ROMANCONV_LOG_FORMAT", "json")
	loader := &recordingLoader{}
	logs := &bytes.Buffer{}

	_, _, err := Parse([]string{"-c", "unused.hcl"}, io.Discard, logs, loader)
	require.NoError(t, err)
	require.NotNil(t, loader.ctx, "the loader should have been called")

	ctxlog.FromContext(loader.ctx).Debug("from loader")

	assert.Contains(t, logs.String(), `"msg":"from loader"`)
}
