package adapter

import "errors"

// Sentinels for the error statuses of the server API.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("server error")

	ErrInvalidAddress = errors.New("invalid server address")
)
