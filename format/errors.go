package format

import (
	"errors"
	"fmt"
)

// The two error kinds of the format. Every Reader error is one of them (compare with errors.Is).
var (
	ErrEndOfFile   = errors.New("osu format: unexpected end of data")
	ErrInvalidData = errors.New("osu format: invalid data")
)

// Refinements of ErrInvalidData. errors.Is(err, ErrInvalidData) holds for each of them.
var (
	ErrStringTag     = fmt.Errorf("%w: unknown string tag", ErrInvalidData)
	ErrStringUTF8    = fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidData)
	ErrULEB          = fmt.Errorf("%w: malformed uleb128", ErrInvalidData)
	ErrLengthOverrun = fmt.Errorf("%w: length does not fit an int", ErrInvalidData)
	ErrTrailingData  = fmt.Errorf("%w: unread trailing bytes", ErrInvalidData)
)
