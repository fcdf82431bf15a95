package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds the part of an error body copied into the error text.
const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := truncateBody(strings.TrimSpace(string(resp.Body())), maxErrorBody)
	if body == "" {
		body = http.StatusText(code)
	}

	var specific error
	switch code {
	case http.StatusBadRequest:
		specific = ErrBadRequest
	case http.StatusUnauthorized:
		specific = ErrUnauthorized
	case http.StatusForbidden:
		specific = ErrForbidden
	case http.StatusNotFound:
		specific = ErrNotFound
	case http.StatusTooManyRequests:
		specific = ErrTooManyRequests
	case http.StatusInternalServerError:
		specific = ErrInternalServerError
	case http.StatusBadGateway:
		specific = ErrBadGateway
	case http.StatusServiceUnavailable:
		specific = ErrServiceUnavailable
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, body)
	}

	return fmt.Errorf("%w: %w: http %d: %s", ErrUnexpectedStatus, specific, code, body)
}

// truncateBody cuts s to at most limit bytes without splitting a rune.
func truncateBody(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
