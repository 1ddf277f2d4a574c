package param

import (
	"net/url"
	"strings"
)

// A Pair is a single decoded key and value out of a query string.
type Pair struct {
	Key   string
	Value string
}

// Params is every Pair in a query string in the order they appeared.
// The same key may appear more than once.
type Params []Pair

// ParseQuery decodes raw, the portion of a request target after the first '?'.
//
// ParseQuery always returns a non-nil Params.
// Empty tokens, such as the trailing one in "a=b&", contribute nothing.
func ParseQuery(raw string) Params {
	toks := tokens(raw)
	params := make(Params, 0, len(toks))
	for _, tok := range toks {
		key, value := split(tok)
		params = append(params, Pair{Key: Unescape(key), Value: Unescape(value)})
	}

	return params
}

// SplitTarget separates a request target into its path and raw query string.
// ok reports whether target contained a '?' at all.
func SplitTarget(target string) (path, rawQuery string, ok bool) {
	return strings.Cut(target, "?")
}

// Get returns the first value for key.
func (p Params) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Keys returns each distinct key once, in the order first seen.
func (p Params) Keys() []string {
	seen := make(map[string]struct{}, len(p))
	keys := make([]string, 0, len(p))
	for _, pair := range p {
		if _, ok := seen[pair.Key]; ok {
			continue
		}

		seen[pair.Key] = struct{}{}
		keys = append(keys, pair.Key)
	}

	return keys
}

// Values groups p by key, keeping the order of values under each key.
func (p Params) Values() url.Values {
	vals := make(url.Values, len(p))
	for _, pair := range p {
		vals[pair.Key] = append(vals[pair.Key], pair.Value)
	}

	return vals
}
