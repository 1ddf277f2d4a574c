package param

import (
	"net/url"
	"strings"
)

// Unescape decodes a percent-encoded key or value, treating '+' as a space.
//
// If s is not valid percent-encoding, Unescape returns s unchanged.
func Unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return decoded
}

// split separates a token on its first '=' into an encoded key and an encoded value.
// A token without '=' has an empty value.
func split(token string) (key, value string) {
	key, value, _ = strings.Cut(token, "=")
	return key, value
}

// tokens splits raw on '&', dropping empty tokens.
func tokens(raw string) []string {
	if raw == "" {
		return nil
	}

	toks := strings.Split(raw, "&")
	n := 0
	for _, tok := range toks {
		if tok == "" {
			continue
		}

		toks[n] = tok
		n++
	}

	return toks[:n]
}
