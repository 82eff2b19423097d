package main

import "errors"

// Error kinds returned by every transaction. Callers branch with errors.Is;
// the wrapped message carries the detail.
var (
	ErrNotAuthorized   = errors.New("caller is not authorized")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrStringTooLong   = errors.New("string exceeds maximum length")
)
