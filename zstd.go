// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// fileExtensionZstd is the file extension for zstd files.
const fileExtensionZstd = "zst"

// magicBytesZstd are the magic bytes for zstd frames.
// reference: https://www.rfc-editor.org/rfc/rfc8878.html#name-zstandard-frames
var magicBytesZstd = [][]byte{
	{0x28, 0xb5, 0x2f, 0xfd},
}

// decompressZstdStream returns an io.Reader that decompresses src with zstd
// algorithm. Closing the reader releases the decoder.
func decompressZstdStream(src io.Reader) (io.Reader, error) {
	d, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}
