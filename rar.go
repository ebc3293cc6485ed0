// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"io"

	"github.com/nwaples/rardecode"
)

// fileExtensionRar is the file extension for Rar files.
const fileExtensionRar = "rar"

// magicBytesRar are the magic bytes for Rar files.
var magicBytesRar = [][]byte{
	{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00},       // Rar 1.5
	{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x01, 0x00}, // Rar 5.0
}

// isRar checks if the header matches the magic bytes for Rar files.
func isRar(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesRar)
}

// newRarWalker starts decoding the Rar archive in ra.
func newRarWalker(ra io.ReaderAt, size int64) (*rarWalker, error) {
	r, err := rardecode.NewReader(io.NewSectionReader(ra, 0, size), "")
	if err != nil {
		return nil, err
	}
	return &rarWalker{r: r}, nil
}

// rarWalker is an archiveWalker for Rar files. Rar archives carry no
// central directory, the entries are decoded as a stream.
type rarWalker struct {
	r *rardecode.Reader
}

// Type returns the file extension for rar files.
func (rw *rarWalker) Type() string {
	return fileExtensionRar
}

// Concurrent is false, only the current entry of the stream can be read.
func (rw *rarWalker) Concurrent() bool {
	return false
}

// Next returns the next entry in the rar file.
func (rw *rarWalker) Next() (archiveEntry, error) {
	fh, err := rw.r.Next()
	if err != nil {
		return nil, err
	}
	return &rarEntry{fh, rw.r}, nil
}

// rarEntry is an archiveEntry for Rar files.
type rarEntry struct {
	f *rardecode.FileHeader
	r io.Reader
}

// Name returns the name of the file.
func (r *rarEntry) Name() string {
	return r.f.Name
}

// IsDir returns true if the entry is a directory.
func (r *rarEntry) IsDir() bool {
	return r.f.IsDir
}

// Size returns the unpacked size of the file.
func (r *rarEntry) Size() int64 {
	return r.f.UnPackedSize
}

// Open returns a reader for the current file of the stream.
func (r *rarEntry) Open() (io.ReadCloser, error) {
	return io.NopCloser(r.r), nil
}
