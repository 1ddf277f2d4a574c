package logger_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
	"github.com/xy-planning-network/rex/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "{}", string(b))

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test"), Caller: "ignored.go:1"}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	lc = logger.LogContext{Request: req.New(http.MethodGet, "/foo", req.WithHeader("Host", "example.com"))}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"request":{"method":"GET","url":"https://example.com/foo"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Request: req.New(http.MethodPost, "/foo?_method=delete", req.WithHeader("Host", "example.com"))}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(
		t,
		`{"request":{"effectiveMethod":"DELETE","method":"POST","url":"https://example.com/foo?_method=delete"}}`,
		string(b),
	)
}

func TestLogContextMarshalTextMasksURL(t *testing.T) {
	// Arrange
	lc := logger.LogContext{
		Request: req.New(http.MethodGet, "/login?password=hunter2&user=a", req.WithHeader("Host", "example.com")),
	}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.NotContains(t, string(b), "hunter2")
	require.Equal(
		t,
		`{"request":{"method":"GET","url":"https://example.com/login?password=`+rex.LogMaskVal+`\u0026user=a"}}`,
		string(b),
	)
}

func TestLogContextString(t *testing.T) {
	lc := logger.LogContext{Data: map[string]any{"bad": make(chan int)}}
	require.Contains(t, lc.String(), `"error"`)
}

func TestCurrentCaller(t *testing.T) {
	var actual string
	func() { actual = logger.CurrentCaller() }()

	require.Regexp(t, `^logger/context_test\.go:\d+$`, actual)
}
