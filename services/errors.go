package services

import "errors"

// Sentinel errors returned by services. Controllers map them to HTTP
// statuses with errors.Is; anything unmatched is a 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
)
