// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"compress/bzip2"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// fileExtensionZip is the archive type reported for zip and jar files.
const fileExtensionZip = "zip"

// compression methods beyond store and deflate that are found in jars
// written by other tools than the jdk
// reference: https://pkware.cachefly.net/webdocs/casestudies/APPNOTE.TXT (4.4.5)
const (
	zipMethodBzip2 uint16 = 12
	zipMethodZstd  uint16 = 93
	zipMethodXz    uint16 = 95
)

// magicBytesZip contains the signatures a zip archive can start with: a local
// file header, the end of central directory of an empty archive, and the
// marker of a spanned archive.
var magicBytesZip = [][]byte{
	{0x50, 0x4B, 0x03, 0x04},
	{0x50, 0x4B, 0x05, 0x06},
	{0x50, 0x4B, 0x07, 0x08},
}

// isZip checks if header belongs to a zip archive.
func isZip(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesZip)
}

// newZipWalker reads the central directory of the zip archive in ra.
func newZipWalker(ra io.ReaderAt, size int64) (*zipWalker, error) {
	zr, err := zip.NewReader(ra, size)

	// a reader comes with an error for insecure names, those are skipped
	// later by normalizeName
	if zr == nil {
		return nil, err
	}
	zr.RegisterDecompressor(zipMethodBzip2, decompressZipBzip2)
	zr.RegisterDecompressor(zipMethodZstd, decompressZipZstd)
	zr.RegisterDecompressor(zipMethodXz, decompressZipXz)
	return &zipWalker{zr: zr}, nil
}

func decompressZipBzip2(r io.Reader) io.ReadCloser {
	return io.NopCloser(bzip2.NewReader(r))
}

func decompressZipZstd(r io.Reader) io.ReadCloser {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return &errReadCloser{err: err}
	}
	return d.IOReadCloser()
}

func decompressZipXz(r io.Reader) io.ReadCloser {
	xr, err := xz.NewReader(r)
	if err != nil {
		return &errReadCloser{err: err}
	}
	return io.NopCloser(xr)
}

// zipWalker is a walker for zip files
type zipWalker struct {
	zr *zip.Reader
	fp int
}

// Type returns the file extension for zip files
func (z *zipWalker) Type() string {
	return fileExtensionZip
}

// Concurrent is true, entries of a zip archive are read through an io.ReaderAt.
func (z *zipWalker) Concurrent() bool {
	return true
}

// Next returns the next entry in the zip archive
func (z *zipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.zr.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &zipEntry{z.zr.File[z.fp]}, nil
}

// zipEntry is an entry in a zip archive
type zipEntry struct {
	zf *zip.File
}

// Name returns the raw name of the entry
func (z *zipEntry) Name() string {
	return z.zf.Name
}

// IsDir returns true if the entry is a directory marker
func (z *zipEntry) IsDir() bool {
	if strings.HasSuffix(z.zf.Name, "/") || strings.HasSuffix(z.zf.Name, `\`) {
		return true
	}
	return z.zf.Mode().IsDir()
}

// Size returns the uncompressed size declared in the central directory
func (z *zipEntry) Size() int64 {
	return int64(z.zf.UncompressedSize64)
}

// Open returns a reader for the entry
func (z *zipEntry) Open() (io.ReadCloser, error) {
	return z.zf.Open()
}
