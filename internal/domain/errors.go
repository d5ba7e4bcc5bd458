package domain

import "fmt"

// ParseErrKind distinguishes the two ways a puzzle line can be malformed.
type ParseErrKind int

const (
	ParseErrLength ParseErrKind = iota
	ParseErrCharacter
)

// ParseError reports a malformed puzzle line. It is the only error the
// core produces for user input; the boundary decides how to exit.
type ParseError struct {
	Kind    ParseErrKind
	WantLen int  // ParseErrLength
	GotLen  int  // ParseErrLength
	Pos     int  // ParseErrCharacter
	Char    byte // ParseErrCharacter
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrLength:
		return fmt.Sprintf("puzzle must be %d characters, got %d", e.WantLen, e.GotLen)
	default:
		return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
	}
}
