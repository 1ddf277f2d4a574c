package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rex/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		header   http.Header
		expected string
	}{
		{"No-Match", http.Header{}, "0.0.0.0"},
		{"Nil", nil, "0.0.0.0"},
		{"Only-Private-IP", http.Header{"X-Forwarded-For": {"192.168.0.0"}}, "0.0.0.0"},
		{"Range-End-Is-Private", http.Header{"X-Forwarded-For": {"10.255.255.255"}}, "0.0.0.0"},
		{"Only-Public-IP", http.Header{"X-Forwarded-For": {"1.1.1.1"}}, "1.1.1.1"},
		{"Get-Before-Proxy", http.Header{"X-Real-Ip": {"10.0.0.1,1.1.1.1"}}, "1.1.1.1"},
		{
			"Get-First-Public",
			http.Header{"X-Real-Ip": {"10.255.255.255, 8.8.8.8, 1.1.1.1, 172.16.0.0"}},
			"1.1.1.1",
		},
		{
			"Forwarded-For-Wins",
			http.Header{"X-Real-Ip": {"8.8.8.8"}, "X-Forwarded-For": {"1.1.1.1"}},
			"1.1.1.1",
		},
		{"Garbage", http.Header{"X-Forwarded-For": {"not-an-ip"}}, "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.header))
		})
	}
}
