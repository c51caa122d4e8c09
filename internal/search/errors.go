package search

import "errors"

var (
	// ErrInvalidPattern is returned when the regular expression fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidGlob is returned when the file glob is malformed.
	ErrInvalidGlob = errors.New("invalid glob")

	// ErrWrite is returned by a strategy when the output sink rejects a write.
	ErrWrite = errors.New("write error")
)
