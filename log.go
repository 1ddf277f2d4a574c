package rex

import (
	"net/url"
	"strings"
)

const LogMaskVal = "xxxxxx"

const (
	AppLogKind  = "app"
	HTTPLogKind = "http"
)

// LogMaskParams lists the query params whose values never reach a log.
var LogMaskParams = []string{"password"}

// MaskURL replaces the value of every query param in u named in params,
// in any case, with [LogMaskVal].
//
// Everything else in u, including the order of query params, is left as is.
func MaskURL(u string, params ...string) string {
	base, rawQuery, ok := strings.Cut(u, "?")
	if !ok || rawQuery == "" {
		return u
	}

	toks := strings.Split(rawQuery, "&")
	for i, tok := range toks {
		key, _, _ := strings.Cut(tok, "=")
		name, err := url.QueryUnescape(key)
		if err != nil {
			name = key
		}

		for _, p := range params {
			if strings.EqualFold(name, p) {
				toks[i] = key + "=" + LogMaskVal
				break
			}
		}
	}

	return base + "?" + strings.Join(toks, "&")
}
