package types

import "errors"

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrUnknownKind    = errors.New("unknown dataset kind")
	ErrInvalidRange   = errors.New("invalid date range")
	ErrRowOutOfRange  = errors.New("row index out of range")
)
