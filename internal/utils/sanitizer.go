package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer turns remote HTML fragments into plain text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with bluemonday's strict policy: every
// tag is removed, text content is kept.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// PlainText strips all markup from s, decodes entities and collapses runs of
// whitespace.
func (s *Sanitizer) PlainText(raw string) string {
	stripped := html.UnescapeString(s.policy.Sanitize(raw))
	return strings.Join(strings.Fields(stripped), " ")
}
