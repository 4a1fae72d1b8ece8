package service

import "errors"

var (
	// ErrInvalidInput means caller-supplied data failed validation.
	ErrInvalidInput = errors.New("invalid data provided")

	// ErrAlreadyExists means a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound means the requested entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both a wrong password and an
	// unrecognized, expired or tampered token. The two are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable means a backend could not be reached within budget.
	ErrUnavailable = errors.New("backend unavailable")
)
