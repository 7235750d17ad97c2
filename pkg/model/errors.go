// pkg/model/errors.go
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the class of a pipeline failure
type Kind int

const (
	// KindNotFound indicates the input path does not resolve to an existing file
	KindNotFound Kind = iota
	// KindMalformedInput indicates the file exists but cannot be parsed into a uniform table
	KindMalformedInput
	// KindEmptyColumn indicates a column requiring imputation has no non-null values
	KindEmptyColumn
	// KindTypeCoercion indicates a numeric column held non-coercible text at the retyping stage
	KindTypeCoercion
)

// String returns a string representation of the error kind
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindMalformedInput:
		return "MalformedInput"
	case KindEmptyColumn:
		return "EmptyColumn"
	case KindTypeCoercion:
		return "TypeCoercionError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is a terminal pipeline failure. Every kind aborts the current
// run; nothing is retried because the pipeline is pure local
// computation over a provided input.
type Error struct {
	Kind   Kind   // Failure class
	Stage  string // Pipeline stage that failed
	Column string // Column involved, when known
	Err    error  // Underlying cause
}

// Error returns a formatted error message
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] stage %s", e.Kind, e.Stage))
	if e.Column != "" {
		sb.WriteString(fmt.Sprintf(" column %s", e.Column))
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is (or wraps) a pipeline error of the given kind
func IsKind(err error, kind Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}

// IsNotFound reports whether err represents a missing input file
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsMalformedInput reports whether err represents an unparseable input table
func IsMalformedInput(err error) bool {
	return IsKind(err, KindMalformedInput)
}

// IsEmptyColumn reports whether err represents an all-null imputable column
func IsEmptyColumn(err error) bool {
	return IsKind(err, KindEmptyColumn)
}

// IsTypeCoercion reports whether err represents a failed numeric coercion
func IsTypeCoercion(err error) bool {
	return IsKind(err, KindTypeCoercion)
}
