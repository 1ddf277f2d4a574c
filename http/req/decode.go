package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/rex"
)

const formContentType = "application/x-www-form-urlencoded"

// paramDecoder is safe for concurrent use and caches struct metadata across requests.
var paramDecoder = newParamDecoder()

func newParamDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// Params merges the query params with the form fields of an application/x-www-form-urlencoded body.
// Query params come before form fields sharing the same key.
func (r *Request) Params() url.Values {
	vals := r.query.Values()
	if !r.isForm() {
		return vals
	}

	for k, vs := range r.BodyFromURLFormEncoded() {
		vals[k] = append(vals[k], vs...)
	}

	return vals
}

// DecodeParams decodes Params into a pointer to a struct,
// matching keys to fields with "schema" struct tags.
// If successful, DecodeParams runs validation against the contents,
// returning an error wrapping [rex.ErrNotValid] if the data fails validation rules.
func (r *Request) DecodeParams(structPtr any) error {
	if err := paramDecoder.Decode(structPtr, r.Params()); err != nil {
		return fmt.Errorf("rex/http/req: failed decoding request params: %w", translateDecoderError(err))
	}

	if err := validate(structPtr); err != nil {
		return fmt.Errorf("rex/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// DecodeBody decodes the JSON body into a pointer to a struct.
// If successful, DecodeBody runs validation against the contents,
// returning an error wrapping [rex.ErrNotValid] if the data fails validation rules.
func (r *Request) DecodeBody(structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.Unmarshal(r.body, structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("rex/http/req: %w: DecodeBody called with non-pointer: %s", rex.ErrUnexpected, err)
	}

	if err != nil {
		return fmt.Errorf("rex/http/req: %w: failed decoding request body: %s", rex.ErrBadFormat, err)
	}

	if err := validate(structPtr); err != nil {
		return fmt.Errorf("rex/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

func (r *Request) isForm() bool {
	vals, ok := r.headers.Lookup(contentTypeHeader)
	if !ok || len(vals) == 0 {
		return false
	}

	mt, _, err := mime.ParseMediaType(vals[0])

	return err == nil && mt == formContentType
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// still some are issues with mismatches between a request's params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		// NOTE: schema returns a plain error when handed something other than a pointer to a struct.
		return fmt.Errorf("%w: %s", rex.ErrUnexpected, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				// For non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use "validate" tags for required fields, not "schema"`, rex.ErrNotImplemented)

		case schema.UnknownKeyError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", rex.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", rex.ErrUnexpected, err)
		}
	}

	return validErrs
}
