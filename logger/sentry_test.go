package logger_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/logger"
)

func TestNewSentryLoggerBadDSN(t *testing.T) {
	color.NoColor = true

	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	actual := logger.NewSentryLogger(rex.Testing, l, "not a dsn")

	// Assert
	require.Same(t, l, actual)
	require.Contains(t, b.String(), "unable to init Sentry")
}
