package base64

import (
	"errors"
)

// ErrInvalidSymbol is returned when decode input contains a character that
// belongs to neither alphabet and is not a padding symbol.
var ErrInvalidSymbol = errors.New("input is not valid base64-encoded data")

// ErrMalformedLength is returned when decode input, after any line-break
// stripping, is not a positive multiple of 4 characters long.
var ErrMalformedLength = errors.New("base64 input length must be a positive multiple of 4")
