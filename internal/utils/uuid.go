package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// articleNamespace scopes deterministic article ids.
var articleNamespace = uuid.MustParse("6f1d3c2a-8e4b-5a7f-9c0d-2b3e4f5a6b7c")

// UUIDGenerator produces surrogate keys for local rows.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered random id.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ArticleID returns the key of a remote article cached for userID. The same
// (user, source url, raw title) always maps to the same id, so re-syncing a
// page replaces rows instead of duplicating them. Articles without a source
// url cannot be recognised again and get a fresh id.
func (g *UUIDGenerator) ArticleID(userID int64, sourceURL, rawTitle string) string {
	if sourceURL == "" {
		return g.Generate()
	}

	name := strconv.FormatInt(userID, 10) + "|" + sourceURL + "|" + rawTitle
	return uuid.NewSHA1(articleNamespace, []byte(name)).String()
}
