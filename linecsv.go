// # LineCSV: A Line-Addressable CSV Row Reader for Go
//
// LineCSV reads CSV files one physical line at a time while keeping track of an
// optional header row. Rows can be returned as plain field slices or keyed by
// header name, and the reader can jump straight to any line of the file.
//
// # Features
//
// - Lazy header detection from the first line, or from any line chosen with `Reader.SetHeaderLine`.
// - Transparent skipping of blank and delimiter-only rows that do not match the header width.
// - UTF-8 byte-order-mark removal on the first line.
// - O(1) seeking via `Reader.AdvanceTo`, backed by a line offset index built once per file.
// - Memory-mapped file access and transparent LZ4 frame decompression in `Open`.
// - Structured error reporting via `ParseError`, `NavigationError`, and the package sentinels.
//
// # Getting Started
//
//	r, err := linecsv.Open("people.csv")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	for {
//		rec, err := r.Read()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(rec.Values["name"])
//	}
//
// A Reader is not safe for concurrent use.
package linecsv
