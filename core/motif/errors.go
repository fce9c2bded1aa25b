package motif

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPattern  = errors.New("invalid motif pattern")
	ErrExpansionLimit  = errors.New("motif expansion exceeds limit")
	ErrIndexOutOfRange = errors.New("motif index out of range")
)

// PatternError reports a pattern that cannot be expanded.
// Pos is the 0-based byte offset of the offending character, or -1.
type PatternError struct {
	Pattern string
	Pos     int
	Reason  string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("motif %q: %s at position %d", e.Pattern, e.Reason, e.Pos+1)
	}
	return fmt.Sprintf("motif %q: %s", e.Pattern, e.Reason)
}

func (e *PatternError) Unwrap() error { return e.Err }
