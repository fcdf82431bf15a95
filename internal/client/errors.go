package client

import "errors"

var (
	ErrNilDependency = errors.New("nil dependency")

	// ErrNoAccount is returned when there is no stored session and no
	// account is configured to sign in with.
	ErrNoAccount = errors.New("no session stored and no account configured")
)
