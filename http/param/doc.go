/*
Package param parses the application/x-www-form-urlencoded grammar
shared by query strings and form bodies.

Both [ParseQuery] and [ParseForm] split input on '&' and each token on its first '=',
decoding keys and values with [Unescape].
Unescape never fails: malformed percent-encoding, like a bare '%',
leaves the original text in place rather than rejecting the request.
*/
package param
