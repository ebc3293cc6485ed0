// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"io"
	"strings"
)

// decompressionFunc wraps a compressed stream. If the returned reader is an
// io.Closer, it is closed after use.
type decompressionFunc func(io.Reader) (io.Reader, error)

// decompressor describes a single-stream compression format that an archive
// can be wrapped in, e.g. rt.jar.gz.
type decompressor struct {
	FileExtension string
	MagicBytes    [][]byte
	Decompress    decompressionFunc
}

// availableDecompressors is the list of known container compressions.
// Brotli has no magic bytes and is matched by file extension only.
var availableDecompressors = []decompressor{
	{FileExtension: fileExtensionBrotli, Decompress: decompressBrotliStream},
	{FileExtension: fileExtensionBzip2, MagicBytes: magicBytesBzip2, Decompress: decompressBz2Stream},
	{FileExtension: fileExtensionGZip, MagicBytes: magicBytesGZip, Decompress: decompressGZipStream},
	{FileExtension: fileExtensionLZ4, MagicBytes: magicBytesLZ4, Decompress: decompressLZ4Stream},
	{FileExtension: fileExtensionSnappy, MagicBytes: magicBytesSnappy, Decompress: decompressSnappyStream},
	{FileExtension: fileExtensionXz, MagicBytes: magicBytesXz, Decompress: decompressXzStream},
	{FileExtension: fileExtensionZlib, MagicBytes: magicBytesZlib, Decompress: decompressZlibStream},
	{FileExtension: fileExtensionZstd, MagicBytes: magicBytesZstd, Decompress: decompressZstdStream},
}

// maxHeaderLength is the number of bytes needed to detect any known format.
var maxHeaderLength int

// init calculates the maximum header length
func init() {
	all := [][][]byte{magicBytesZip, magicBytes7zip, magicBytesRar}
	for _, d := range availableDecompressors {
		all = append(all, d.MagicBytes)
	}
	for _, magicBytes := range all {
		for _, mb := range magicBytes {
			if len(mb) > maxHeaderLength {
				maxHeaderLength = len(mb)
			}
		}
	}
}

// findDecompressor returns the decompressor matching header or, for formats
// without magic bytes, the extension of name. It returns nil if the input is
// not compressed with a known format.
func findDecompressor(header []byte, name string) *decompressor {
	for i := range availableDecompressors {
		d := &availableDecompressors[i]
		if len(d.MagicBytes) > 0 && matchesMagicBytes(header, 0, d.MagicBytes) {
			return d
		}
	}
	for i := range availableDecompressors {
		d := &availableDecompressors[i]
		if len(d.MagicBytes) == 0 && strings.HasSuffix(strings.ToLower(name), "."+d.FileExtension) {
			return d
		}
	}
	return nil
}

// decompress unwraps src with d and caches the result, so the archive inside
// can be read with random access. The size of the decompressed data is
// limited by the configured maximum input size.
func decompress(src io.Reader, d *decompressor, cfg *Config) (*source, error) {
	cfg.Logger().Info("decompress", "fileExt", d.FileExtension)

	stream, err := d.Decompress(src)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closer, ok := stream.(io.Closer); ok {
			closer.Close()
		}
	}()

	s, err := cacheStream(stream, cfg)
	if err != nil {
		return nil, err
	}
	s.compression = d.FileExtension
	return s, nil
}
