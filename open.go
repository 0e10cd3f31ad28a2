package linecsv

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// lz4Magic is the little-endian LZ4 frame magic number 0x184D2204.
var lz4Magic = []byte{0x04, 0x22, 0x4D, 0x18}

// OpenFile maps the file at path and returns a cursor over its lines. LZ4
// frame-compressed files are decompressed transparently, in which case Size
// reports the decompressed size. The caller must Close the cursor.
func OpenFile(path string) (*BufferCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := mapFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to map file: %w", err)
	}

	if !bytes.HasPrefix(data, lz4Magic) {
		c := NewBufferCursor(data)
		c.release = func() error { return unmapFile(data) }
		return c, nil
	}

	plain, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if uerr := unmapFile(data); uerr != nil && err == nil {
		err = uerr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decompress file: %w", err)
	}
	return NewBufferCursor(plain), nil
}

// Open opens the file at path and returns a Reader that treats the first
// line as headers. Close the Reader to release the file.
func Open(path string) (*Reader, error) {
	c, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewReader(c), nil
}

// Close releases the underlying cursor if it implements io.Closer. The Reader
// must not be used afterwards.
func (r *Reader) Close() error {
	if r == nil || r.cur == nil {
		return nil
	}
	closer, ok := r.cur.(io.Closer)
	r.cur = nil
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("linecsv: close: %w", err)
	}
	return nil
}
