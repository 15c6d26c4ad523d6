// FILE: tomlmap/errors.go
package tomlmap

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotStruct    = errors.New("value is not a struct")
	ErrNilObject    = errors.New("object is nil")
	ErrNilTarget    = errors.New("decode target must be a non-nil pointer")
	ErrInvalidTag   = errors.New("invalid struct tag")
	ErrDuplicateKey = errors.New("duplicate document key")

	ErrNilElement   = errors.New("collection value cannot be null")
	ErrOverflow     = errors.New("value out of range")
	ErrNotIntegral  = errors.New("collection value is not an integer")
	ErrTypeMismatch = errors.New("document value does not match field type")

	ErrFileTooLarge = errors.New("file exceeds maximum size")
)

// ConversionError reports a field value that could not be converted
// to or from its document representation.
type ConversionError struct {
	Op    string // "encode" or "decode"
	Field string // Type.Field
	Type  reflect.Type
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s error at %s (%v): %v", e.Op, e.Field, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// UnsupportedFieldError is returned in strict mode for a field whose type
// has no document representation. Outside strict mode such fields are skipped.
type UnsupportedFieldError struct {
	Field string
	Type  reflect.Type
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("unsupported field %s of type %v", e.Field, e.Type)
}

// ParseError wraps a syntax error from the underlying document parser.
// Line and Column are 1-based; zero means unknown.
type ParseError struct {
	Format Format
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s parse error at line %d, column %d: %v", e.Format, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s parse error: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
