package models

import "errors"

// Application-wide standard errors
var (
	// Character store errors
	ErrStoreCorrupted = errors.New("character store is corrupted")
	ErrStoreWrite     = errors.New("character store write failed")

	// General request errors
	ErrInvalidInput = errors.New("invalid input data")
	ErrBadRequest   = errors.New("bad request")
)
