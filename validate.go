package mdlex

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// InputError reports where input validation failed.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ValidateInput returns an *InputError wrapping ErrInvalidUTF8 or
// ErrBinaryInput if src is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	control := 0
	lastControl := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return &InputError{Offset: i, Err: ErrInvalidUTF8}
		}
		if r == 0 {
			return &InputError{Offset: i, Err: ErrBinaryInput}
		}
		if isControlRune(r) {
			control++
			lastControl = i
		}
		i += size
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return &InputError{Offset: lastControl, Err: ErrBinaryInput}
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
