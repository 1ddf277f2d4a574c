package logger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/xy-planning-network/rex"
)

var (
	_ encoding.TextMarshaler = LogContext{}
)

// LogRequest is the interface exposing attributes of an HTTP request to a LogContext.
// *req.Request implements it.
type LogRequest interface {
	HTTPMethod() string
	EffectiveHTTPMethod() string
	URL() string
}

// A LogContext provides additional information and configuration
// for a Logger method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller is not logged in the text of a LogContext.
	//
	// Caller helps goroutines identify the callers of the process that spawned it.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the request that may or may not have been open during the logging event.
	Request LogRequest
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
// Query params listed in rex.LogMaskParams are masked in the request URL.
//
// Values in LogContext.Data that cannot be represented in JSON will cause an error to be thrown.
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		r := map[string]any{
			"method": lc.Request.HTTPMethod(),
			"url":    rex.MaskURL(lc.Request.URL(), rex.LogMaskParams...),
		}

		if eff := lc.Request.EffectiveHTTPMethod(); eff != lc.Request.HTTPMethod() {
			r["effectiveMethod"] = eff
		}

		m["request"] = r
	}

	return json.Marshal(m)
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err)
	}

	return string(b)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
//
//	myFunc() {		<- returns this caller
//		func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return callSite(file, line)
}
