package linecsv

import "bytes"

// LineCursor is a line-oriented position over a text file. Line indexes are
// zero-based; the position equal to the number of lines is end of file.
type LineCursor interface {
	// Seek moves to line, clamped to the valid range.
	Seek(line int)
	// Rewind moves to line 0.
	Rewind()
	// Current returns the text of the current line without its terminator.
	// ok is false at end of file.
	Current() (line string, ok bool)
	// Next moves to the following line.
	Next()
	// EOF reports whether the cursor is past the last line.
	EOF() bool
	// Key returns the current line index.
	Key() int
	// Size returns the size of the underlying text in bytes.
	Size() int64
}

// BufferCursor is a LineCursor over an in-memory buffer. The start offset of
// every line is indexed on construction, so Seek is O(1).
type BufferCursor struct {
	data   []byte
	starts []int
	pos    int

	release func() error
}

// NewBufferCursor indexes data and returns a cursor positioned at line 0.
// Lines end at '\n'; a '\r' before it is dropped. The empty remainder after a
// final newline is not counted as a line.
func NewBufferCursor(data []byte) *BufferCursor {
	c := &BufferCursor{data: data}
	if len(data) == 0 {
		return c
	}

	c.starts = make([]int, 1, bytes.Count(data, []byte{'\n'})+1)
	for off := 0; ; {
		idx := bytes.IndexByte(data[off:], '\n')
		if idx < 0 {
			break
		}
		off += idx + 1
		if off >= len(data) {
			break
		}
		c.starts = append(c.starts, off)
	}
	return c
}

// Lines returns the number of indexed lines.
func (c *BufferCursor) Lines() int {
	return len(c.starts)
}

// Seek moves to line, clamped to [0, Lines()].
func (c *BufferCursor) Seek(line int) {
	switch {
	case line < 0:
		c.pos = 0
	case line > len(c.starts):
		c.pos = len(c.starts)
	default:
		c.pos = line
	}
}

// Rewind moves to line 0.
func (c *BufferCursor) Rewind() {
	c.pos = 0
}

// Current returns the current line without its terminator, or ok=false at end of file.
func (c *BufferCursor) Current() (string, bool) {
	if c.pos >= len(c.starts) {
		return "", false
	}

	start := c.starts[c.pos]
	end := len(c.data)
	if c.pos+1 < len(c.starts) {
		end = c.starts[c.pos+1]
	}
	line := c.data[start:end]
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return string(line), true
}

// Next moves to the following line; it stays put at end of file.
func (c *BufferCursor) Next() {
	if c.pos < len(c.starts) {
		c.pos++
	}
}

// EOF reports whether the cursor is past the last line.
func (c *BufferCursor) EOF() bool {
	return c.pos >= len(c.starts)
}

// Key returns the current line index.
func (c *BufferCursor) Key() int {
	return c.pos
}

// Size returns the length of the buffer in bytes.
func (c *BufferCursor) Size() int64 {
	return int64(len(c.data))
}

// Close releases the buffer. Cursors created by OpenFile unmap the file here;
// Close is a no-op for cursors over caller-owned memory.
func (c *BufferCursor) Close() error {
	release := c.release
	c.release = nil
	c.data = nil
	c.starts = nil
	c.pos = 0
	if release == nil {
		return nil
	}
	return release()
}
