// Package scan provides line-oriented input reading for the analysis
// pipeline: gzip-aware file opening and a scanner that yields stripped lines
// with 1-based line numbers.
package scan

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Line is one raw input line: its 1-based number and the text with
// surrounding whitespace already stripped.
type Line struct {
	No   int
	Text string
}

// Open opens a file for scanning, transparently decompressing gzip input.
// The returned cleanup function closes all underlying resources.
func Open(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	if IsGzipPath(path) {
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		cleanup := func() error {
			gz.Close()
			return file.Close()
		}
		return gz, cleanup, nil
	}

	return file, file.Close, nil
}

// IsGzipPath returns true if the path indicates gzip compression.
func IsGzipPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// Scanner yields input lines one at a time. Lines grow as needed; no
// maximum line length is enforced.
type Scanner struct {
	reader *bufio.Reader
	lineNo int
	err    error
	done   bool
}

// NewScanner wraps a reader. bufferSize is the initial read buffer size;
// values <= 0 fall back to 64 KiB. Longer lines are accommodated by growing.
func NewScanner(r io.Reader, bufferSize int) *Scanner {
	if bufferSize <= 0 {
		bufferSize = 64 * 1024
	}
	return &Scanner{reader: bufio.NewReaderSize(r, bufferSize)}
}

// Next returns the next line, or ok=false when the input is exhausted.
func (s *Scanner) Next() (Line, bool) {
	if s.done {
		return Line{}, false
	}

	text, err := s.reader.ReadString('\n')
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
			return Line{}, false
		}
		// Final line without a terminator.
		if text == "" {
			return Line{}, false
		}
	}

	s.lineNo++
	return Line{No: s.lineNo, Text: strings.TrimSpace(text)}, true
}

// Err reports any read error other than io.EOF.
func (s *Scanner) Err() error {
	return s.err
}
