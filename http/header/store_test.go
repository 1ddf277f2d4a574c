package header_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/header"
)

func TestStoreZeroValue(t *testing.T) {
	// Arrange
	var s header.Store

	// Act
	val, ok := s.Get("missing")

	// Assert
	require.False(t, ok)
	require.Zero(t, val)
	require.Equal(t, []string{}, s.Values("missing"))
	require.Equal(t, []string{}, s.Names())
	require.Zero(t, s.Len())
}

func TestStoreAddGet(t *testing.T) {
	for _, tc := range []struct {
		name  string
		key   string
		value string
	}{
		{"Plain", "header-key", "header value"},
		{"Invalid-Encoding", "invalid-header-key", "%invalidUrlEncode"},
		{"Valid-Encoding", "validUrlDecode", "%20this%20that"},
		{"Empty", "header-key-2", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var s header.Store

			// Act
			s.Add(tc.key, tc.value)
			actual, ok := s.Get(tc.key)

			// Assert
			require.True(t, ok)
			require.Equal(t, tc.value, actual)
		})
	}
}

func TestStoreKeepsNameCase(t *testing.T) {
	// Arrange
	var s header.Store
	s.Add("Host", "testing-host")

	// Act
	_, ok := s.Get("host")

	// Assert
	require.False(t, ok)
	require.Equal(t, []string{"Host"}, s.Names())
}

func TestStoreValues(t *testing.T) {
	// Arrange
	var s header.Store
	s.Add("common-key", "header-value")
	s.Add("common-key", "header-value-1")

	// Act
	actual := s.Values("common-key")
	first, _ := s.Get("common-key")

	// Assert
	require.Equal(t, []string{"header-value", "header-value-1"}, actual)
	require.Equal(t, "header-value", first)

	// Arrange
	actual[0] = "mutated"

	// Assert
	require.Equal(t, []string{"header-value", "header-value-1"}, s.Values("common-key"))
}

func TestStoreRequire(t *testing.T) {
	// Arrange
	var s header.Store
	s.Add("validUrlDecode", "%20this%20that")

	// Act
	val, err := s.Require("validUrlDecode", "This should not display")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "%20this%20that", val)

	// Act
	val, err = s.Require("missing", "missing header")

	// Assert
	require.Zero(t, val)
	require.ErrorIs(t, err, rex.ErrBadRequest)
	require.EqualError(t, err, "bad request: missing header")

	var missing *header.MissingError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "missing", missing.Name)
	require.Equal(t, "missing header", missing.Msg)
}

func TestMissingErrorNoMessage(t *testing.T) {
	err := &header.MissingError{Name: "X-Api-Key"}
	require.EqualError(t, err, `bad request: "X-Api-Key" is required`)
}

func TestStoreNames(t *testing.T) {
	// Arrange
	var s header.Store
	s.Add("header-key-2", "")
	s.Add("header-key", "header-value")
	s.Add("header-key-1", "header-value-1")
	s.Add("header-key", "again")

	// Act
	actual := s.Names()

	// Assert
	require.Equal(t, []string{"header-key", "header-key-1", "header-key-2"}, actual)
	require.Equal(t, 3, s.Len())
}

func TestStoreLookup(t *testing.T) {
	// Arrange
	var s header.Store
	s.Add("_METHOD", "put")
	s.Add("_Method", "delete")
	s.Add("exact", "1")

	// Act
	vals, ok := s.Lookup("exact")

	// Assert
	require.True(t, ok)
	require.Equal(t, []string{"1"}, vals)

	// Act
	vals, ok = s.Lookup("_method")

	// Assert
	require.True(t, ok)
	require.Equal(t, []string{"put"}, vals)

	// Act
	vals, ok = s.Lookup("missing")

	// Assert
	require.False(t, ok)
	require.Equal(t, []string{}, vals)
}
