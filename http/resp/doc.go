// Package resp writes JSON responses, mapping rex sentinel errors onto HTTP status codes.
package resp
