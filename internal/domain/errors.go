package domain

import "errors"

// Domain errors
var (
	ErrNoExtractedText = errors.New("no text could be extracted")
	ErrInvalidEncoding = errors.New("invalid text encoding")
)
