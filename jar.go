// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// Jar holds the extracted entries of an archive. Files maps the normalized,
// slash separated entry path to the uncompressed content. The map belongs to
// the caller and is not touched by this package after [Extract] returned.
//
// Jar also implements [fs.FS], [fs.ReadFileFS], [fs.ReadDirFS] and
// [fs.StatFS] over Files. Directories are derived from the file paths, they
// are not part of Files.
type Jar struct {
	Files map[string][]byte
}

// Len returns the number of extracted files.
func (j *Jar) Len() int {
	return len(j.Files)
}

// Names returns the paths of all extracted files in sorted order.
func (j *Jar) Names() []string {
	names := make([]string, 0, len(j.Files))
	for name := range j.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadFile returns a copy of the content of the named file.
func (j *Jar) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	data, ok := j.Files[name]
	if !ok {
		if j.isDir(name) {
			return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
		}
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrNotExist}
	}
	return bytes.Clone(data), nil
}

// Open opens the named file or directory for reading.
func (j *Jar) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if data, ok := j.Files[name]; ok {
		return &jarFile{
			Reader: bytes.NewReader(data),
			info:   fileInfo(name, data),
		}, nil
	}
	if j.isDir(name) {
		entries, _ := j.ReadDir(name)
		return &jarDir{info: dirInfo(name), entries: entries}, nil
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Stat returns the [fs.FileInfo] of the named file or directory.
func (j *Jar) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	if data, ok := j.Files[name]; ok {
		return fileInfo(name, data), nil
	}
	if j.isDir(name) {
		return dirInfo(name), nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// ReadDir returns the entries of the named directory sorted by name.
func (j *Jar) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	if _, ok := j.Files[name]; ok || !j.isDir(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	prefix := dirPrefix(name)
	seen := make(map[string]fs.DirEntry)
	for p, data := range j.Files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := p[len(prefix):]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			child := rest[:i]
			seen[child] = fs.FileInfoToDirEntry(dirInfo(prefix + child))
			continue
		}
		if _, ok := seen[rest]; !ok {
			seen[rest] = fs.FileInfoToDirEntry(fileInfo(p, data))
		}
	}

	entries := make([]fs.DirEntry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Name() < entries[b].Name()
	})
	return entries, nil
}

// isDir reports whether any file lives below name.
func (j *Jar) isDir(name string) bool {
	if name == "." {
		return true
	}
	prefix := dirPrefix(name)
	for p := range j.Files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// dirPrefix returns the prefix shared by all paths below dir.
func dirPrefix(dir string) string {
	if dir == "." {
		return ""
	}
	return dir + "/"
}

func fileInfo(name string, data []byte) *jarFileInfo {
	return &jarFileInfo{name: path.Base(name), size: int64(len(data)), mode: 0444}
}

func dirInfo(name string) *jarFileInfo {
	return &jarFileInfo{name: path.Base(name), mode: fs.ModeDir | 0555}
}

// jarFile is an opened file of a [Jar].
type jarFile struct {
	*bytes.Reader
	info *jarFileInfo
}

func (f *jarFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

func (f *jarFile) Close() error {
	return nil
}

// jarDir is an opened directory of a [Jar].
type jarDir struct {
	info    *jarFileInfo
	entries []fs.DirEntry
	offset  int
}

func (d *jarDir) Stat() (fs.FileInfo, error) {
	return d.info, nil
}

func (d *jarDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: fs.ErrInvalid}
}

func (d *jarDir) Close() error {
	return nil
}

// ReadDir implements [fs.ReadDirFile].
func (d *jarDir) ReadDir(n int) ([]fs.DirEntry, error) {
	rest := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return rest, nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	if n > len(rest) {
		n = len(rest)
	}
	d.offset += n
	return rest[:n], nil
}

// jarFileInfo is the [fs.FileInfo] of files and directories of a [Jar].
// Entries carry no timestamps, ModTime is always the zero time.
type jarFileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (fi *jarFileInfo) Name() string       { return fi.name }
func (fi *jarFileInfo) Size() int64        { return fi.size }
func (fi *jarFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *jarFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *jarFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *jarFileInfo) Sys() any           { return nil }
