package rex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rex"
)

func TestMaskURL(t *testing.T) {
	for _, tc := range []struct {
		name     string
		url      string
		params   []string
		expected string
	}{
		{"Zero-Value", "", []string{"password"}, ""},
		{"No-Query", "https://example.com/login", []string{"password"}, "https://example.com/login"},
		{"No-Params", "/login?password=hunter2", nil, "/login?password=hunter2"},
		{"Mismatch", "/login?passwrod=hunter2", []string{"password"}, "/login?passwrod=hunter2"},
		{
			"Match-Keeps-Order",
			"https://example.com/login?user=a&password=hunter2&next=%2F",
			[]string{"password"},
			"https://example.com/login?user=a&password=" + rex.LogMaskVal + "&next=%2F",
		},
		{
			"Every-Occurrence",
			"/?password=a&password=b",
			[]string{"password"},
			"/?password=" + rex.LogMaskVal + "&password=" + rex.LogMaskVal,
		},
		{"Any-Case", "/?PassWord=hunter2", []string{"password"}, "/?PassWord=" + rex.LogMaskVal},
		{"Encoded-Key", "/?pass%77ord=hunter2", []string{"password"}, "/?pass%77ord=" + rex.LogMaskVal},
		{"No-Value", "/?password&x=1", []string{"password"}, "/?password=" + rex.LogMaskVal + "&x=1"},
		{"Empty-Tokens-Kept", "/?a=1&&password=p", []string{"password"}, "/?a=1&&password=" + rex.LogMaskVal},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, rex.MaskURL(tc.url, tc.params...))
		})
	}
}
