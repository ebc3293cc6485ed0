// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// headerReader is an io.Reader over a stream whose first bytes have been
// read ahead to identify the format. Reading starts at the beginning of the
// stream, including the header.
type headerReader struct {
	*bufio.Reader
	header []byte
}

// newHeaderReader reads up to headerSize bytes ahead. A stream shorter than
// headerSize is not an error, the header is just shorter.
func newHeaderReader(r io.Reader, headerSize int) (*headerReader, error) {
	br := bufio.NewReaderSize(r, headerSize)
	header, err := br.Peek(headerSize)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "cannot read header")
	}
	return &headerReader{Reader: br, header: header}, nil
}

// PeekHeader returns the bytes read ahead. The slice is only valid until the
// next read.
func (h *headerReader) PeekHeader() []byte {
	return h.header
}
