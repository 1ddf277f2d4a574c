package param

import "net/url"

// ParseForm parses an application/x-www-form-urlencoded body.
// When decode is false, keys and values are kept exactly as they appear in body.
//
// Repeated keys accumulate their values in body order.
// An empty or nil body yields an empty, non-nil url.Values.
func ParseForm(body []byte, decode bool) url.Values {
	form := make(url.Values)
	for _, tok := range tokens(string(body)) {
		key, value := split(tok)
		if decode {
			key, value = Unescape(key), Unescape(value)
		}

		form[key] = append(form[key], value)
	}

	return form
}
