package dubar

import (
	"errors"
	"io"
	"os"
	"unicode/utf8"
)

// lineChunkSize keeps reads small so binary files are rejected after
// the first few bytes rather than after a full buffer.
const lineChunkSize = 128

// countLines counts newline-delimited lines in the file at path. A
// final line without a trailing newline still counts. Content that is
// not valid UTF-8 is treated as binary and counts as zero lines.
func countLines(path string) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err //nolint:wrapcheck // Path context is added by the caller
	}
	defer file.Close()

	var (
		buf      [lineChunkSize]byte
		pending  []byte // incomplete trailing rune carried between chunks
		lines    int64
		lastByte byte
		nonEmpty bool
	)

	for {
		n, readErr := file.Read(buf[:])
		if n > 0 {
			nonEmpty = true
			chunk := append(pending, buf[:n]...)

			valid := validPrefix(chunk)
			if valid == 0 && len(chunk) >= utf8.UTFMax {
				// No decodable prefix at all: binary content.
				return 0, nil
			}

			for _, b := range chunk[:valid] {
				if b == '\n' {
					lines++
				}
			}

			if valid > 0 {
				lastByte = chunk[valid-1]
			}

			pending = append(pending[:0], chunk[valid:]...)
			if len(pending) >= utf8.UTFMax {
				// A single rune cannot be this long: binary content.
				return 0, nil
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			return 0, readErr //nolint:wrapcheck // Path context is added by the caller
		}
	}

	if len(pending) > 0 {
		// Trailing bytes never completed a rune: binary content.
		return 0, nil
	}

	if nonEmpty && lastByte != '\n' {
		lines++
	}

	return lines, nil
}

// validPrefix returns the length of the longest prefix of b that is
// wholly valid UTF-8, stopping before any undecodable byte.
func validPrefix(b []byte) int {
	valid := 0

	for valid < len(b) {
		r, size := utf8.DecodeRune(b[valid:])
		if r == utf8.RuneError && size <= 1 {
			break
		}

		valid += size
	}

	return valid
}
