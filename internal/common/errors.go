// Package common defines sentinel errors shared by the accountbook packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrCorruptDocument is returned when a persisted document cannot be decoded.
	ErrCorruptDocument = errors.New("corrupt document")

	// Configuration errors.
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrUnknownLocale  = errors.New("unknown locale")
)
