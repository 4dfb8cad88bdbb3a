package iri

import (
	"errors"
	"fmt"

	"github.com/geoknoesis/iri-go/internal/iriparse"
)

// ErrorKind is a programmatic error code for IRI parse failures, in the
// spirit of the teacher repo's ErrorCode convention for classifying
// errors without string-matching a message.
type ErrorKind string

const (
	ErrInvalidCharacter         ErrorKind = "InvalidCharacter"
	ErrInvalidPercentEncoding   ErrorKind = "InvalidPercentEncoding"
	ErrInvalidIPLiteral         ErrorKind = "InvalidIpLiteral"
	ErrInvalidHostCharacter     ErrorKind = "InvalidHostCharacter"
	ErrInvalidPortCharacter     ErrorKind = "InvalidPortCharacter"
	ErrSchemeRequired           ErrorKind = "SchemeRequired"
	ErrNoSchemeFound            ErrorKind = "NoSchemeFound"
	ErrPathStartsWithTwoSlashes ErrorKind = "PathStartsWithTwoSlashes"
	ErrInvalidBaseIri           ErrorKind = "InvalidBaseIri"
)

// errNonAbsoluteBase is wrapped into a *ParseError with Kind
// ErrInvalidBaseIri by Ref.Resolve when its receiver carries no scheme.
var errNonAbsoluteBase = errors.New("base IRI reference is not absolute: missing scheme")

// ParseError is returned by Parse and ParseRef (and by Resolve/ResolveInto,
// which parse their reference argument) when the input does not conform
// to the IRI or IRI-reference grammar.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Input  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("iri: %s: %s (at byte %d of %q)", e.Kind, e.Err, e.Offset, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Code returns the ErrorKind carried by err, or "" if err is nil or not
// a *ParseError. It mirrors the teacher's Code(err) ErrorCode helper.
func Code(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func wrapParseError(input string, err error) error {
	if err == nil {
		return nil
	}
	var pe *iriparse.Error
	if errors.As(err, &pe) {
		return &ParseError{
			Kind:   ErrorKind(pe.Kind),
			Offset: pe.Offset,
			Input:  input,
			Err:    pe,
		}
	}
	return err
}
