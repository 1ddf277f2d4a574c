package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"info", logger.LogLevelInfo},
		{"Warn", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"", logger.LogLevelUnk},
		{"LOUD", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}

	require.Equal(t, "[UNK]", logger.LogLevelUnk.String())
	require.Equal(t, "[WARN]", logger.LogLevelWarn.String())
}

func TestRexLoggerLevels(t *testing.T) {
	color.NoColor = true

	for _, tc := range []struct {
		level    logger.LogLevel
		expected []string
	}{
		{logger.LogLevelDebug, []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]", "[FATAL]"}},
		{logger.LogLevelInfo, []string{"[INFO]", "[WARN]", "[ERROR]", "[FATAL]"}},
		{logger.LogLevelWarn, []string{"[WARN]", "[ERROR]", "[FATAL]"}},
		{logger.LogLevelError, []string{"[ERROR]", "[FATAL]"}},
		{logger.LogLevelFatal, []string{"[FATAL]"}},
	} {
		t.Run(tc.level.String(), func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			// Act
			l.Debug("msg", nil)
			l.Info("msg", nil)
			l.Warn("msg", nil)
			l.Error("msg", nil)
			l.Fatal("msg", nil)

			// Assert
			require.Equal(t, tc.level, l.LogLevel())

			lines := strings.Split(strings.TrimSpace(b.String()), "\n")
			require.Len(t, lines, len(tc.expected))
			for i, line := range lines {
				require.Equal(t, tc.expected[i], logLevelRegexp.FindString(line))
				require.Regexp(t, fpRegexp, line)
				require.Equal(t, "'msg'", msgRegexp.FindString(line))
			}
		})
	}
}

func TestRexLoggerLogContext(t *testing.T) {
	color.NoColor = true

	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithKind(rex.HTTPLogKind))

	// Act
	l.Info("with context", &logger.LogContext{Caller: "somewhere/else.go:1", Error: errors.New("oops")})

	// Assert
	require.Equal(t, `[INFO] http somewhere/else.go:1 'with context' log_context: {"error":"oops"}`+"\n", b.String())
}

func TestRexLoggerAddSkip(t *testing.T) {
	color.NoColor = true

	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	skipped := l.AddSkip(1)
	helper := func() { skipped.Info("skipped", nil) }
	helper()

	// Assert
	require.Equal(t, 0, l.Skip())
	require.Equal(t, 1, skipped.Skip())
	require.Regexp(t, fpRegexp, b.String())
}

func TestWithLevelIgnoresUnknown(t *testing.T) {
	l := logger.New(logger.WithLevel(logger.LogLevelUnk))
	require.Equal(t, logger.LogLevelInfo, l.LogLevel())
}
