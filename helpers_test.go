// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	dsbzip2 "github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// zip compression methods of the entries written by createZip
const (
	methodBzip2 uint16 = 12
	methodZstd  uint16 = 93
	methodXz    uint16 = 95
)

// testEntry describes an entry written by createZip. Names ending with "/"
// are written as directory entries.
type testEntry struct {
	name   string
	data   string
	method uint16
}

// file returns a deflated testEntry.
func file(name, data string) testEntry {
	return testEntry{name: name, data: data, method: zip.Deflate}
}

// dir returns a directory testEntry.
func dir(name string) testEntry {
	return testEntry{name: name, method: zip.Store}
}

// createZip returns a zip archive holding entries in the given order.
func createZip(t *testing.T, entries ...testEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(methodBzip2, func(w io.Writer) (io.WriteCloser, error) {
		return dsbzip2.NewWriter(w, &dsbzip2.WriterConfig{Level: 9})
	})
	zw.RegisterCompressor(methodZstd, zstd.ZipCompressor())
	zw.RegisterCompressor(methodXz, func(w io.Writer) (io.WriteCloser, error) {
		return &lazyXzWriter{w: w}, nil
	})

	for _, e := range entries {
		f, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: e.method})
		if err != nil {
			t.Fatalf("cannot create zip entry %s: %v", e.name, err)
		}
		if strings.HasSuffix(e.name, "/") {
			continue
		}
		if _, err := f.Write([]byte(e.data)); err != nil {
			t.Fatalf("cannot write zip entry %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("cannot close zip writer: %v", err)
	}
	return buf.Bytes()
}

// lazyXzWriter creates its xz stream on the first Write or Close. The zip
// writer creates compressors before it writes the local file header, and
// xz.NewWriter writes the stream header right away.
type lazyXzWriter struct {
	w  io.Writer
	xw *xz.Writer
}

func (l *lazyXzWriter) init() error {
	if l.xw != nil {
		return nil
	}
	xw, err := xz.NewWriter(l.w)
	if err != nil {
		return err
	}
	l.xw = xw
	return nil
}

func (l *lazyXzWriter) Write(p []byte) (int, error) {
	if err := l.init(); err != nil {
		return 0, err
	}
	return l.xw.Write(p)
}

func (l *lazyXzWriter) Close() error {
	if err := l.init(); err != nil {
		return err
	}
	return l.xw.Close()
}

// createJDKJar returns a jar with a directory entry, two classes and a
// manifest.
func createJDKJar(t *testing.T) []byte {
	t.Helper()
	return createZip(t,
		dir("java/lang/"),
		file("java/lang/Object.class", "object"),
		file("java/util/List.class", "list"),
		file("META-INF/MANIFEST.MF", "Manifest-Version: 1.0\n"),
	)
}

// writeTestFile stores data in a file named name below a temporary directory
// and returns its path.
func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	return p
}

// keys returns the sorted keys of the files of a jar.
func keys(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for k := range files {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
