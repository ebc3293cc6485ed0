// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"io"
)

// limitErrorReader is a reader that fails with a given error once more than
// L bytes are read from the underlying reader. Unlike [io.LimitReader] it
// never truncates silently. If the limit is -1, all data from the original
// reader is read.
type limitErrorReader struct {
	R   io.Reader // underlying reader
	L   int64     // limit
	N   int64     // number of bytes read
	Err error     // returned once the limit is exceeded
}

// Read reads from the underlying reader and fills up p. Reading exactly L
// bytes is fine; the error is returned as soon as the underlying reader
// offers one byte more.
func (l *limitErrorReader) Read(p []byte) (int, error) {
	if l.L == -1 {
		n, err := l.R.Read(p)
		l.N += int64(n)
		return n, err
	}

	if l.N > l.L {
		return 0, l.Err
	}

	// allow one byte beyond the limit to detect overflow
	remaining := l.L - l.N + 1
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := l.R.Read(p)
	l.N += int64(n)
	if l.N > l.L {
		return n - int(l.N-l.L), l.Err
	}
	return n, err
}

// ReadBytes returns how many bytes have been read from the underlying reader
func (l *limitErrorReader) ReadBytes() int64 {
	return l.N
}

// newLimitErrorReader returns a new limitErrorReader that reads from r and
// fails with err after limit bytes.
func newLimitErrorReader(r io.Reader, limit int64, err error) *limitErrorReader {
	return &limitErrorReader{R: r, L: limit, Err: err}
}
