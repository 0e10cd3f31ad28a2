package linecsv

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		comma byte
		quote byte
		want  []string
	}{
		{
			name:  "basicFields",
			input: "one,two,three",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "emptyLine",
			input: "",
			want:  []string{""},
		},
		{
			name:  "delimitersOnly",
			input: ",,",
			want:  []string{"", "", ""},
		},
		{
			name:  "trailingDelimiter",
			input: "last,row,",
			want:  []string{"last", "row", ""},
		},
		{
			name:  "quotedComma",
			input: "a,\"b,b\",c",
			want:  []string{"a", "b,b", "c"},
		},
		{
			name:  "escapedQuote",
			input: "a,\"b\"\"c\",d",
			want:  []string{"a", "b\"c", "d"},
		},
		{
			name:  "emptyQuotedField",
			input: "a,\"\"",
			want:  []string{"a", ""},
		},
		{
			name:  "textAfterClosingQuote",
			input: "\"ab\"cd,e",
			want:  []string{"abcd", "e"},
		},
		{
			name:  "unterminatedQuote",
			input: "a,\"b,c",
			want:  []string{"a", "b,c"},
		},
		{
			name:  "bareQuoteKept",
			input: "a\"b,c",
			want:  []string{"a\"b", "c"},
		},
		{
			name:  "customComma",
			input: "left;right",
			comma: ';',
			want:  []string{"left", "right"},
		},
		{
			name:  "customQuote",
			input: "alpha,'beta''gamma',delta",
			quote: '\'',
			want:  []string{"alpha", "beta'gamma", "delta"},
		},
		{
			name:  "tabDelimited",
			input: "x\t\"y\tz\"",
			comma: '\t',
			want:  []string{"x", "y\tz"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ParseLine(tc.input, tc.comma, tc.quote)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseLine(%q) mismatch:\n got: %#v\nwant: %#v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSplitLineStrictErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		err    error
		column int
	}{
		{
			name:   "bareQuote",
			input:  "a\"b,c",
			err:    ErrBareQuote,
			column: 2,
		},
		{
			name:   "unterminatedQuote",
			input:  "\"value",
			err:    ErrUnterminatedQuote,
			column: 7,
		},
		{
			name:   "quoteAfterClosingQuote",
			input:  "x,\"ab\"c\"",
			err:    ErrBareQuote,
			column: 8,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := splitLine(tc.input, ',', '"', true)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("splitLine() error = %v, want *ParseError", err)
			}
			if !errors.Is(perr, tc.err) {
				t.Fatalf("ParseError.Err = %v, want %v", perr.Err, tc.err)
			}
			if perr.Column != tc.column {
				t.Fatalf("ParseError.Column = %d, want %d", perr.Column, tc.column)
			}
		})
	}
}

func TestSplitLineStrictAcceptsValidQuoting(t *testing.T) {
	t.Parallel()

	got, err := splitLine("a,\"b\"\"c\",\"d,e\"", ',', '"', true)
	if err != nil {
		t.Fatalf("splitLine() error = %v, want nil", err)
	}
	want := []string{"a", "b\"c", "d,e"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitLine() = %#v, want %#v", got, want)
	}
}

func TestStripBOM(t *testing.T) {
	t.Parallel()

	if got := stripBOM(utf8BOM + "a,b"); got != "a,b" {
		t.Fatalf("stripBOM() = %q, want %q", got, "a,b")
	}
	if got := stripBOM("a,b"); got != "a,b" {
		t.Fatalf("stripBOM() without mark = %q, want %q", got, "a,b")
	}
	if got := stripBOM("a" + utf8BOM); got != "a"+utf8BOM {
		t.Fatalf("stripBOM() should only remove a leading mark, got %q", got)
	}
}

func TestRowIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		row  []string
		want bool
	}{
		{row: nil, want: true},
		{row: []string{""}, want: true},
		{row: []string{"", "", ""}, want: true},
		{row: []string{"", "x"}, want: false},
		{row: []string{" "}, want: false},
		{row: []string{"0"}, want: false},
	}

	for _, tc := range tests {
		if got := rowIsEmpty(tc.row); got != tc.want {
			t.Errorf("rowIsEmpty(%q) = %v, want %v", tc.row, got, tc.want)
		}
	}
}

func TestParseErrorMethods(t *testing.T) {
	t.Parallel()

	err := &ParseError{Line: 3, Column: 7, Err: ErrBareQuote}
	if got := err.Error(); !strings.Contains(got, "line 3") || !strings.Contains(got, "column 7") {
		t.Fatalf("Error() returned %q, want descriptive output", got)
	}
	if !errors.Is(err, ErrBareQuote) {
		t.Fatalf("ParseError should unwrap to ErrBareQuote")
	}

	rowErr := &ParseError{Line: 4, Err: ErrorFieldCount}
	if got := rowErr.Error(); !strings.Contains(got, "line 4") || strings.Contains(got, "column") {
		t.Fatalf("Error() returned %q, want line without column", got)
	}

	var nilErr *ParseError
	if nilErr.Error() != "" {
		t.Fatalf("nil ParseError should return empty string")
	}
	if nilErr.Unwrap() != nil {
		t.Fatalf("nil ParseError should return nil from Unwrap")
	}
}

func TestNavigationErrorMethods(t *testing.T) {
	t.Parallel()

	err := &NavigationError{Line: 9, Err: ErrPastEOF}
	if got := err.Error(); !strings.Contains(got, "line 9") {
		t.Fatalf("Error() returned %q, want line number", got)
	}
	if !errors.Is(err, ErrPastEOF) {
		t.Fatalf("NavigationError should unwrap to ErrPastEOF")
	}

	var nilErr *NavigationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Fatalf("nil NavigationError should be inert")
	}
}
