package command

import (
	"fmt"
	"strings"
)

// ErrorKind classifies parse failures.
type ErrorKind string

const (
	EmptyInput      ErrorKind = "empty_input"
	UnknownMnemonic ErrorKind = "unknown_mnemonic"
	MissingSubject  ErrorKind = "missing_subject"
	InvalidArgument ErrorKind = "invalid_argument"
	ArityViolation  ErrorKind = "arity_violation"
)

// ParseError describes the first constraint an input violated.
type ParseError struct {
	Kind    ErrorKind `yaml:"kind"`
	Field   string    `yaml:"field,omitempty"`
	Min     int       `yaml:"min,omitempty"`
	Max     int       `yaml:"max,omitempty"`
	Message string    `yaml:"message"`
	// Suggestions holds close mnemonics for UnknownMnemonic.
	Suggestions []string `yaml:"suggestions,omitempty"`
}

func (e *ParseError) Error() string {
	if len(e.Suggestions) == 0 {
		return e.Message
	}
	return e.Message + " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
}

func fail(err *ParseError) Command {
	return Error{Err: err}
}

func errEmpty() *ParseError {
	return &ParseError{Kind: EmptyInput, Message: "empty command"}
}

func errUnknown(tok string, suggestions []string) *ParseError {
	return &ParseError{
		Kind:        UnknownMnemonic,
		Field:       "mnemonic",
		Message:     fmt.Sprintf("unknown command %q", tok),
		Suggestions: suggestions,
	}
}

func errMissingSubject(msg string) *ParseError {
	return &ParseError{Kind: MissingSubject, Field: "subject", Message: msg}
}

func errInvalid(field, format string, args ...any) *ParseError {
	return &ParseError{Kind: InvalidArgument, Field: field, Message: fmt.Sprintf(format, args...)}
}

func errArity(name, field, noun string, n, min, max int) *ParseError {
	e := &ParseError{Kind: ArityViolation, Field: field, Min: min, Max: max}
	if n < min {
		e.Message = fmt.Sprintf("%s requires at least %d %s", name, min, plural(noun, min))
	} else {
		e.Message = fmt.Sprintf("%s accepts at most %d %s", name, max, plural(noun, max))
	}
	return e
}

func plural(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
