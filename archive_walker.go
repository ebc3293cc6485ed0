// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"bytes"
	"io"
)

//go:generate mockgen -source=archive_walker.go -destination=mock_archive_walker_test.go -package=jars

// archiveWalker iterates the entries of an archive in directory order.
// Next returns io.EOF after the last entry.
type archiveWalker interface {
	Type() string
	Next() (archiveEntry, error)

	// Concurrent reports whether entries may be opened in parallel and
	// after later entries have been visited.
	Concurrent() bool
}

// archiveEntry is a record of the archive directory. Open decompresses the
// content lazily.
type archiveEntry interface {
	Name() string
	IsDir() bool
	Size() int64
	Open() (io.ReadCloser, error)
}

// matchesMagicBytes reports whether data holds any of magicBytes at offset.
func matchesMagicBytes(data []byte, offset int, magicBytes [][]byte) bool {
	for _, mb := range magicBytes {
		if offset+len(mb) > len(data) {
			continue
		}
		if bytes.Equal(mb, data[offset:offset+len(mb)]) {
			return true
		}
	}
	return false
}
