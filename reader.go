package linecsv

import (
	"io"
	"log/slog"
	"math"
	"slices"
)

// noHeaderLine marks a Reader whose header line has not been established.
const noHeaderLine = -1

type readerState uint8

const (
	stateUninitialized readerState = iota
	stateInitialized
)

// Record is one row returned by Reader.Read.
type Record struct {
	// Line is the zero-based line index the row was read from.
	Line int
	// Fields holds the row in file order.
	Fields []string
	// Values maps header names to fields. It is nil when the Reader has no
	// headers. With duplicate header names the rightmost field wins.
	Values map[string]string
}

// Reader reads CSV rows from a LineCursor, one physical line per row.
//
// Headers are established lazily on the first call to Headers, Read, ReadAll
// or AdvanceTo: from line 0 when HeadersInFirstRow is set, or from the line
// given to SetHeaderLine.
type Reader struct {
	cur LineCursor

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the enclosure character. Default is '"'.
	Quote byte
	// HeadersInFirstRow treats line 0 as the header row. Default is true.
	// It must be set before the first read; SetHeaderLine clears it.
	HeadersInFirstRow bool
	// StrictQuotes reports stray and unterminated quotes as *ParseError
	// instead of keeping them as field text.
	StrictQuotes bool
	// Logger receives debug records. Nil means slog.Default().
	Logger *slog.Logger

	state      readerState
	headers    []string
	headerLine int
	lastLine   int
	hasLast    bool
}

// NewReader creates a Reader over c, panicking if c is nil. The Reader takes
// ownership of c and closes it in Close when c implements io.Closer.
func NewReader(c LineCursor) *Reader {
	if c == nil {
		panic("linecsv: line cursor cannot be nil")
	}

	return &Reader{
		cur:               c,
		Comma:             ',',
		Quote:             '"',
		HeadersInFirstRow: true,
		headerLine:        noHeaderLine,
	}
}

// Headers returns the header row, or nil when the Reader has no headers.
func (r *Reader) Headers() ([]string, error) {
	if err := r.init(); err != nil {
		return nil, err
	}
	return r.headers, nil
}

// Read returns the next row and advances past it. Rows that are empty and do
// not match the header width are skipped. io.EOF signals that no more rows
// remain; without headers, an empty row also ends the read with io.EOF and
// the following call resumes on the next line.
//
// A non-empty row whose width differs from the headers yields a *ParseError
// wrapping ErrorFieldCount; the row has been consumed, so reading may go on.
func (r *Reader) Read() (Record, error) {
	if err := r.init(); err != nil {
		return Record{}, err
	}
	return r.nextRow(r.headers)
}

// ReadAll reads every remaining row until io.EOF. It returns the rows read so
// far together with the first other error.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// HeaderLine returns the line the headers were read from, or -1 when no
// header line has been established yet or the Reader has no headers.
func (r *Reader) HeaderLine() int {
	return r.headerLine
}

// EOF reports whether the cursor is past the last line.
func (r *Reader) EOF() bool {
	return r.cur.EOF()
}

// Line returns the current line index of the cursor.
func (r *Reader) Line() int {
	return r.cur.Key()
}

// LastLine returns the line index reached by seeking to the end of the file,
// which equals the number of lines. The first call computes it and rewinds the
// cursor to line 0, so callers must not rely on their position afterwards.
//
// The value is cached and is not refreshed if the file changes; call
// ResetLastLine to force a new computation.
func (r *Reader) LastLine() int {
	if r.hasLast {
		return r.lastLine
	}

	r.cur.Seek(int(min(r.cur.Size(), math.MaxInt)))
	r.lastLine = r.cur.Key()
	r.hasLast = true
	r.cur.Rewind()

	r.logger().Debug("computed last line", "line", r.lastLine)
	return r.lastLine
}

// ResetLastLine drops the value cached by LastLine.
func (r *Reader) ResetLastLine() {
	r.lastLine = 0
	r.hasLast = false
}

// CurrentRow tokenizes the current line without moving the cursor. It
// returns an empty row at end of file. A byte-order mark is removed from
// line 0.
func (r *Reader) CurrentRow() ([]string, error) {
	line, ok := r.cur.Current()
	if !ok {
		return []string{}, nil
	}
	if r.cur.Key() == 0 {
		line = stripBOM(line)
	}

	fields, err := splitLine(line, r.Comma, r.Quote, r.StrictQuotes)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Line = r.cur.Key()
		}
		return nil, err
	}
	return fields, nil
}

// AdvanceTo positions the cursor so that the next Read returns line. It fails
// with a *NavigationError for the header line, any line before it, and any
// line more than one past the last line.
func (r *Reader) AdvanceTo(line int) error {
	if err := r.init(); err != nil {
		return err
	}

	switch {
	case line < 0, r.headerLine != noHeaderLine && line < r.headerLine:
		return &NavigationError{Line: line, Err: ErrBeforeHeader}
	case r.headerLine != noHeaderLine && line == r.headerLine:
		return &NavigationError{Line: line, Err: ErrHeaderLine}
	}

	// The line before the target must exist.
	if line > 0 {
		r.cur.Seek(line - 1)
	} else {
		r.cur.Rewind()
	}
	if r.cur.EOF() {
		return &NavigationError{Line: line, Err: ErrPastEOF}
	}

	r.cur.Seek(line)
	r.logger().Debug("advanced", "line", line)
	return nil
}

// SetHeaderLine reads the headers from line instead of line 0 and leaves the
// cursor on the following line. It returns false, doing nothing, for line 0
// and negative lines; the default header detection covers line 0. If the
// header row cannot be read, the Reader and its cursor are left as they were.
func (r *Reader) SetHeaderLine(line int) (bool, error) {
	if line <= 0 {
		return false, nil
	}

	prev := r.cur.Key()
	r.cur.Seek(line)
	headers, err := r.readHeaders(line)
	if err != nil {
		r.cur.Seek(prev)
		return false, err
	}

	r.HeadersInFirstRow = false
	r.state = stateInitialized
	r.headerLine = line
	r.headers = headers
	return true, nil
}

// init establishes the default headers from line 0. A failed header read
// leaves the Reader uninitialized, so the next call reports the error again.
func (r *Reader) init() error {
	if r.state == stateInitialized {
		return nil
	}

	if !r.HeadersInFirstRow || r.headerLine != noHeaderLine {
		r.state = stateInitialized
		return nil
	}

	r.cur.Rewind()
	headers, err := r.readHeaders(0)
	if err != nil {
		return err
	}

	r.state = stateInitialized
	r.headerLine = 0
	r.headers = headers
	return nil
}

// readHeaders reads one row from the current position as the header row. An
// empty or missing header row yields an empty, non-nil header list.
func (r *Reader) readHeaders(line int) ([]string, error) {
	var headers []string
	rec, err := r.nextRow(nil)
	switch {
	case err == io.EOF:
		headers = []string{}
	case err != nil:
		return nil, err
	default:
		headers = slices.Clone(rec.Fields)
	}

	r.logger().Debug("established headers", "line", line, "headers", headers)
	return headers, nil
}

// nextRow reads rows from the cursor until one can be returned. The cursor
// moves past every row it reads, including skipped and failing ones.
func (r *Reader) nextRow(headers []string) (Record, error) {
	for {
		if r.cur.EOF() {
			return Record{}, io.EOF
		}

		line := r.cur.Key()
		fields, err := r.CurrentRow()
		r.cur.Next()
		if err != nil {
			return Record{}, err
		}

		if !rowIsEmpty(fields) {
			return r.record(line, fields, headers)
		}
		if headers == nil {
			return Record{}, io.EOF
		}
		if len(fields) != len(headers) {
			r.logger().Debug("skipped empty row", "line", line, "fields", len(fields), "headers", len(headers))
			continue
		}
		// An all-empty row that matches the header width is a record of empty cells.
		return r.record(line, fields, headers)
	}
}

func (r *Reader) record(line int, fields, headers []string) (Record, error) {
	rec := Record{Line: line, Fields: fields}
	if headers == nil {
		return rec, nil
	}
	if len(fields) != len(headers) {
		return Record{}, &ParseError{Line: line, Err: ErrorFieldCount}
	}

	rec.Values = make(map[string]string, len(headers))
	for i, name := range headers {
		rec.Values[name] = fields[i]
	}
	return rec, nil
}

func (r *Reader) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
