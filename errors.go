package linecsv

import (
	"errors"
	"fmt"
)

var (
	// ErrBareQuote is returned in strict mode when a quote appears inside an unquoted field.
	ErrBareQuote = errors.New("linecsv: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned in strict mode when a quoted field is not closed before the end of the line.
	ErrUnterminatedQuote = errors.New("linecsv: unterminated quoted field")
	// ErrorFieldCount is returned when a non-empty row does not have one field per header.
	ErrorFieldCount = errors.New("linecsv: wrong number of fields")

	// ErrBeforeHeader is returned by AdvanceTo for a line that precedes the header line.
	ErrBeforeHeader = errors.New("linecsv: line is before the header line")
	// ErrHeaderLine is returned by AdvanceTo for the header line itself.
	ErrHeaderLine = errors.New("linecsv: line is the header line")
	// ErrPastEOF is returned by AdvanceTo for a line past the end of the file.
	ErrPastEOF = errors.New("linecsv: line is past the end of the file")
)

// ParseError contains location information for row errors.
type ParseError struct {
	// Line is the zero-based line index of the offending row.
	Line int
	// Column is the 1-based byte column, or 0 when the error concerns the whole row.
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Column == 0 {
		return fmt.Sprintf("linecsv: parse error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("linecsv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NavigationError reports a rejected AdvanceTo target.
type NavigationError struct {
	Line int
	Err  error
}

// Error formats the rejected line and the reason.
func (e *NavigationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("linecsv: cannot advance to line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying Err so NavigationError participates in errors.Is.
func (e *NavigationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
