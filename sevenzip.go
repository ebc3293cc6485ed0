// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"io"

	"github.com/bodgit/sevenzip"
)

// fileExtension7zip is the file extension for 7zip files
const fileExtension7zip = "7z"

// magicBytes7zip are the magic bytes for 7zip files
var magicBytes7zip = [][]byte{
	{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C},
}

// is7zip checks if the header matches the magic bytes for 7zip files
func is7zip(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytes7zip)
}

// newSevenZipWalker reads the header database of the 7zip archive in ra.
func newSevenZipWalker(ra io.ReaderAt, size int64) (*sevenZipWalker, error) {
	r, err := sevenzip.NewReader(ra, size)
	if err != nil {
		return nil, err
	}
	return &sevenZipWalker{r: r}, nil
}

type sevenZipWalker struct {
	r  *sevenzip.Reader
	fp int
}

func (z *sevenZipWalker) Type() string {
	return fileExtension7zip
}

// Concurrent is false. Files of a solid block share one compressed stream
// and opening them in parallel decompresses the block repeatedly.
func (z *sevenZipWalker) Concurrent() bool {
	return false
}

func (z *sevenZipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.r.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &sevenZipEntry{z.r.File[z.fp]}, nil
}

type sevenZipEntry struct {
	f *sevenzip.File
}

func (z *sevenZipEntry) Name() string {
	return z.f.Name
}

func (z *sevenZipEntry) IsDir() bool {
	return z.f.FileInfo().IsDir()
}

func (z *sevenZipEntry) Size() int64 {
	return z.f.FileInfo().Size()
}

func (z *sevenZipEntry) Open() (io.ReadCloser, error) {
	return z.f.Open()
}
