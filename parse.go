package linecsv

import "strings"

const utf8BOM = "\xEF\xBB\xBF"

// ParseLine splits a single physical line into fields using comma as the
// delimiter and quote as the enclosure. A zero comma or quote selects the
// default ',' or '"'.
//
// Parsing is lenient: a quote only opens a quoted field at the start of the
// field, a doubled quote inside a quoted field yields one quote, text after a
// closing quote is kept, and an unterminated quoted field runs to the end of
// the line. An empty line yields a single empty field.
func ParseLine(line string, comma, quote byte) []string {
	fields, _ := splitLine(line, comma, quote, false)
	return fields
}

// splitLine is the tokenizer behind ParseLine. With strict set, stray and
// unterminated quotes are reported as *ParseError values whose Line is left
// for the caller to fill in.
func splitLine(line string, comma, quote byte, strict bool) ([]string, error) {
	if comma == 0 {
		comma = ','
	}
	if quote == 0 {
		quote = '"'
	}

	fields := make([]string, 0, 8)
	var buf []byte
	pos := 0

	for {
		if pos < len(line) && line[pos] == quote {
			// Quoted field: collect runs between quotes, folding doubled quotes.
			pos++
			buf = buf[:0]
			closed := false
			for pos < len(line) {
				idx := strings.IndexByte(line[pos:], quote)
				if idx < 0 {
					buf = append(buf, line[pos:]...)
					pos = len(line)
					break
				}
				buf = append(buf, line[pos:pos+idx]...)
				pos += idx + 1
				if pos < len(line) && line[pos] == quote {
					buf = append(buf, quote)
					pos++
					continue
				}
				closed = true
				break
			}
			if !closed && strict {
				return nil, &ParseError{Column: len(line) + 1, Err: ErrUnterminatedQuote}
			}

			// Anything between the closing quote and the next delimiter is kept verbatim.
			end := fieldEnd(line, pos, comma)
			tail := line[pos:end]
			if strict {
				if idx := strings.IndexByte(tail, quote); idx >= 0 {
					return nil, &ParseError{Column: pos + idx + 1, Err: ErrBareQuote}
				}
			}
			buf = append(buf, tail...)
			fields = append(fields, string(buf))
			pos = end
		} else {
			end := fieldEnd(line, pos, comma)
			value := line[pos:end]
			if strict {
				if idx := strings.IndexByte(value, quote); idx >= 0 {
					return nil, &ParseError{Column: pos + idx + 1, Err: ErrBareQuote}
				}
			}
			fields = append(fields, value)
			pos = end
		}

		if pos >= len(line) {
			return fields, nil
		}
		// Skip the delimiter. A delimiter at the very end opens one last empty field.
		pos++
		if pos == len(line) {
			return append(fields, ""), nil
		}
	}
}

// fieldEnd returns the index of the next delimiter at or after pos, or len(line).
func fieldEnd(line string, pos int, comma byte) int {
	idx := strings.IndexByte(line[pos:], comma)
	if idx < 0 {
		return len(line)
	}
	return pos + idx
}

// stripBOM removes a leading UTF-8 byte-order mark from line. The remaining
// bytes are returned unchanged, valid UTF-8 or not.
func stripBOM(line string) string {
	return strings.TrimPrefix(line, utf8BOM)
}

// rowIsEmpty reports whether a row carries no data: no fields at all, or only empty fields.
func rowIsEmpty(row []string) bool {
	for _, field := range row {
		if field != "" {
			return false
		}
	}
	return true
}
