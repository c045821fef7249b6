package lambda

import (
	"errors"
	"fmt"
)

// LexError reports malformed escape brackets in source text.
type LexError struct {
	Offset int // byte offset of the opening bracket
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Msg)
}

// ParseError reports a grammar violation. Pos is the index of the offending token.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d: %s", e.Pos, e.Msg)
}

// ErrStepLimit is returned by ReduceContext when a session exceeds MaxSteps.
var ErrStepLimit = errors.New("step limit exceeded")
