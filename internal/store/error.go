package store

import "errors"

var (
	ErrUnavailable = errors.New("database not configured")
	ErrInvalidID   = errors.New("invalid document id")
)
