package pipe

import "errors"

var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrPermission is returned when the input file cannot be read.
	ErrPermission = errors.New("permission denied reading input file")
)
