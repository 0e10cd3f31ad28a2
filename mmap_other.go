//go:build !unix

package linecsv

import (
	"io"
	"os"
)

// mapFile reads f into memory on platforms without mmap support.
func mapFile(f *os.File) ([]byte, error) {
	return io.ReadAll(f)
}

// unmapFile is a no-op for buffers returned by mapFile.
func unmapFile(data []byte) error {
	return nil
}
