// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FetchStatus tags the variant held by a FetchResult.
type FetchStatus int

const (
	// FetchLoading is emitted first, before any network call.
	FetchLoading FetchStatus = iota
	// FetchSuccess carries the rows inserted into the local store.
	FetchSuccess
	// FetchError carries a user-facing message and the underlying error.
	FetchError
)

// String implements fmt.Stringer.
func (s FetchStatus) String() string {
	switch s {
	case FetchLoading:
		return "loading"
	case FetchSuccess:
		return "success"
	case FetchError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchResult is one emission of a page fetch stream.
// Only the fields of the variant named by Status are meaningful.
type FetchResult struct {
	Status FetchStatus

	// Articles is set for FetchSuccess.
	Articles []Article

	// Message is set for FetchError and is safe to show to the user.
	Message string

	// Err is set for FetchError and is meant for logs.
	Err error
}

// Loading builds the FetchLoading variant.
func Loading() FetchResult {
	return FetchResult{Status: FetchLoading}
}

// Success builds the FetchSuccess variant.
func Success(articles []Article) FetchResult {
	return FetchResult{Status: FetchSuccess, Articles: articles}
}

// Failure builds the FetchError variant.
func Failure(message string, err error) FetchResult {
	return FetchResult{Status: FetchError, Message: message, Err: err}
}

// IsTerminal reports whether no further emission follows this one.
func (r FetchResult) IsTerminal() bool {
	return r.Status != FetchLoading
}
