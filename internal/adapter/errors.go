package adapter

import "errors"

// Status errors. Every non-2xx response wraps ErrUnexpectedStatus and, when
// the code is known, one of the more specific values.
var (
	ErrUnexpectedStatus    = errors.New("unexpected http status")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Payload errors.
var (
	// ErrDecodingResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodingResponse = errors.New("cannot decode response")

	// ErrEmptyCompletion is returned when the model answered without any
	// candidate text.
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrMalformedCompletion is returned when the candidate text is not a
	// JSON object with titulo, resumen and categoria.
	ErrMalformedCompletion = errors.New("malformed completion")
)
