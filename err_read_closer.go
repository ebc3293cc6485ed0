// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

// errReadCloser is an io.ReadCloser that fails every read with err. It lets
// a zip decompressor, which cannot return an error itself, report a broken
// stream header on the first read.
type errReadCloser struct {
	err error
}

// Read returns the stored error.
func (e *errReadCloser) Read(p []byte) (int, error) {
	return 0, e.err
}

// Close is a no-op method that satisfies the io.Closer interface.
func (e *errReadCloser) Close() error {
	return nil
}
