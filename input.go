// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// source is a random access view on the bytes of an archive together with
// the function that releases it.
type source struct {
	ra      io.ReaderAt
	size    int64
	release func() error

	// compression is the file extension of the stream the archive was
	// unwrapped from, empty for plain archives
	compression string
}

// Close releases the resources of the source.
func (s *source) Close() error {
	if s.release == nil {
		return nil
	}
	return s.release()
}

// header returns the first bytes of the source, enough to detect its format.
func (s *source) header() ([]byte, error) {
	buf := make([]byte, maxHeaderLength)
	n, err := s.ra.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

// openFile opens the archive at path, optionally mapped into memory.
func openFile(path string, cfg *Config) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}
	size := stat.Size()

	if cfg.MemoryMap() && size > 0 {
		data, unmap, err := mmapFile(f, size)
		if err == nil {
			return &source{
				ra:   bytes.NewReader(data),
				size: size,
				release: func() error {
					err := unmap()
					if cerr := f.Close(); err == nil {
						err = cerr
					}
					return err
				},
			}, nil
		}
		cfg.Logger().Debug("memory mapping failed, reading through file", "path", path, "error", err)
	}

	return &source{ra: f, size: size, release: f.Close}, nil
}

// openReader converts r into a source. Readers that support random access
// are used as they are, everything else is cached in memory or in a
// temporary file. A compressed stream is unwrapped while it is cached.
func openReader(r io.Reader, cfg *Config) (*source, error) {

	// check if r is a readerAt and a seeker, pipes fail to seek and are
	// read as a stream
	if sra, ok := r.(seekerReaderAt); ok {
		src, err := openSeekerReaderAt(sra)
		if err == nil {
			return src, nil
		}
		cfg.Logger().Debug("reader is not seekable, caching it", "error", err)
	}

	// check if r is a buffer
	if b, ok := r.(*bytes.Buffer); ok {
		return &source{ra: bytes.NewReader(b.Bytes()), size: int64(b.Len())}, nil
	}

	hr, err := newHeaderReader(r, maxHeaderLength)
	if err != nil {
		return nil, err
	}
	if cfg.Decompression() {
		if d := findDecompressor(hr.PeekHeader(), ""); d != nil {
			return decompress(hr, d, cfg)
		}
	}
	return cacheStream(hr, cfg)
}

// seekerReaderAt combines the io.ReaderAt and io.Seeker interfaces
type seekerReaderAt interface {
	io.ReaderAt
	io.Seeker
}

// openSeekerReaderAt returns a source that starts at the current offset of
// sra and ends at its end. The offset of sra is left unchanged.
func openSeekerReaderAt(sra seekerReaderAt) (*source, error) {
	cur, err := sra.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get offset of reader")
	}
	end, err := sra.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "cannot seek to end of reader")
	}
	if _, err := sra.Seek(cur, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "cannot restore offset of reader")
	}
	size := end - cur
	if cur == 0 {
		return &source{ra: sra, size: size}, nil
	}
	return &source{ra: io.NewSectionReader(sra, cur, size), size: size}, nil
}

// cacheStream reads r into memory or a temporary file, depending on the
// configuration, and fails once the maximum input size is exceeded.
func cacheStream(r io.Reader, cfg *Config) (*source, error) {
	ler := newLimitErrorReader(r, cfg.MaxInputSize(), ErrMaxInputSizeExceeded)

	if cfg.CacheInMemory() {
		b, err := io.ReadAll(ler)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read all from reader")
		}
		return &source{ra: bytes.NewReader(b), size: int64(len(b))}, nil
	}

	tmpFile, err := os.CreateTemp("", "jars-*")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create cache file")
	}
	release := func() error {
		tmpFile.Close()
		return os.Remove(tmpFile.Name())
	}

	n, err := io.Copy(tmpFile, ler)
	if err != nil {
		release()
		return nil, errors.Wrap(err, "cannot copy reader to file")
	}
	return &source{ra: tmpFile, size: n, release: release}, nil
}
