/*
File    : gomix-script/internal/gomixerr/gomixerr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package gomixerr defines the three fatal error kinds the pipeline can
// raise: LexError, ParseError and EvalError. Every one carries the source
// Location it happened at, best-effort, plus a short message (spec.md §7).
package gomixerr

import (
	"fmt"

	"github.com/akashmaji946/gomix-script/internal/srcloc"
)

// Kind distinguishes which stage raised the error.
type Kind string

const (
	Lex   Kind = "lex"
	Parse Kind = "parse"
	Eval  Kind = "eval"
)

// Error is the single structured failure type the core raises. The host
// decides how to surface it; here it simply implements the error interface.
type Error struct {
	Kind    Kind
	Loc     srcloc.Location
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Loc, e.Kind, e.Message)
}

// New builds an Error with a formatted message, following the teacher's
// CreateError convention of stamping position info directly into the text.
func New(kind Kind, loc srcloc.Location, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Loc: loc, Message: fmt.Sprintf(format, args...)}
}

func NewLex(loc srcloc.Location, format string, args ...interface{}) *Error {
	return New(Lex, loc, format, args...)
}

func NewParse(loc srcloc.Location, format string, args ...interface{}) *Error {
	return New(Parse, loc, format, args...)
}

func NewEval(loc srcloc.Location, format string, args ...interface{}) *Error {
	return New(Eval, loc, format, args...)
}
