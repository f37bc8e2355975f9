package models

import "github.com/cockroachdb/errors"

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnprocessableStateError is rendered with the http status code 422
	UnprocessableStateError = errors.New("unprocessable state")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Lifecycle related errors
var (
	ErrUnknownResponsible = errors.Wrap(NotFoundError, "responsible user not found")
	ErrHearingOnNonAcceptedCase = errors.Wrap(UnprocessableStateError,
		"hearing date can only be set on an accepted case")
	ErrUnknownCaseStatus = errors.Wrap(BadParameterError, "unknown case status")
)

// Reminder dispatch related errors
var (
	// DispatchFailureError is never surfaced past a sweep boundary: the affected
	// case is skipped for the cycle and picked up again on the next tick.
	DispatchFailureError = errors.New("notification dispatch failed")
)
