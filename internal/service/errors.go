package service

import (
	"errors"

	"github.com/MKhiriev/go-summary-news/internal/app"
)

// Auth errors. Their texts are the messages shown to the user.
var (
	ErrFillAllFields           = errors.New(app.MsgFillAllFields)
	ErrFillAllFieldsToRegister = errors.New(app.MsgFillAllFieldsToRegister)
	ErrPasswordTooShort        = errors.New(app.MsgPasswordTooShort)
	ErrEmailAlreadyRegistered  = errors.New(app.MsgEmailAlreadyRegistered)
	ErrInvalidCredentials      = errors.New(app.MsgInvalidCredentials)
	ErrNoActiveSession         = errors.New(app.MsgNoActiveSession)
)

// Sync errors.
var (
	// ErrEmptyHeadline skips a raw headline without a title when enrichment
	// is disabled.
	ErrEmptyHeadline = errors.New("headline has no title")

	// ErrNoOwner is returned when a fetch or query is issued without a user.
	ErrNoOwner = errors.New("no user id given")
)
