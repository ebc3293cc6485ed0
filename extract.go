// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// now is a function point that returns time.Now to the caller.
var now = time.Now

// readerPath is used as archive path in errors and logs for readers.
const readerPath = "-"

// maxSizeHint caps the buffer preallocated from the size an archive declares
// for an entry, the declared size is not trusted.
const maxSizeHint = 64 << 20

// WalkFunc is called by [Walk] for every accepted entry in directory order.
// name is the normalized entry path and data the uncompressed content, owned
// by the callee. Returning [io/fs.SkipAll] stops the walk without error, any
// other error aborts it.
type WalkFunc func(name string, data []byte) error

// Extract reads the archive at path and returns all file entries accepted by
// opt. The archive is usually a jar, but any zip archive works, as well as
// 7zip and rar archives and archives wrapped in a compressed stream such as
// rt.jar.gz.
//
// Directory entries and entries whose path would leave the archive root are
// skipped silently. If two entries resolve to the same path, the later one
// wins. Any failure aborts the extraction: the returned error matches
// [ErrIO] and the [Jar] is nil.
func Extract(ctx context.Context, path string, opt Option, opts ...ConfigOption) (*Jar, error) {
	cfg := NewConfig(opts...)
	x := newExtraction(cfg, opt, path)
	x.files = make(map[string][]byte)
	if err := x.run(ctx, func() (*source, error) { return openFile(path, cfg) }); err != nil {
		return nil, err
	}
	return &Jar{Files: x.files}, nil
}

// ExtractReader is like [Extract] but reads the archive from r. If r
// implements [io.ReaderAt] and [io.Seeker], the archive spans from the current
// offset of r to its end and r is not advanced. Any other reader, including
// an [os.File] on a pipe, is read to EOF and cached first, see
// [WithCacheInMemory].
func ExtractReader(ctx context.Context, r io.Reader, opt Option, opts ...ConfigOption) (*Jar, error) {
	cfg := NewConfig(opts...)
	x := newExtraction(cfg, opt, readerPath)
	x.files = make(map[string][]byte)
	if err := x.run(ctx, func() (*source, error) { return openReader(r, cfg) }); err != nil {
		return nil, err
	}
	return &Jar{Files: x.files}, nil
}

// Walk reads the archive at path like [Extract], but hands every accepted
// entry to fn instead of collecting them. Without [WithConcurrency] only one
// entry is held in memory at a time.
func Walk(ctx context.Context, path string, opt Option, fn WalkFunc, opts ...ConfigOption) error {
	cfg := NewConfig(opts...)
	x := newExtraction(cfg, opt, path)
	x.visit = fn
	return x.run(ctx, func() (*source, error) { return openFile(path, cfg) })
}

// WalkReader is like [Walk] but reads the archive from r.
func WalkReader(ctx context.Context, r io.Reader, opt Option, fn WalkFunc, opts ...ConfigOption) error {
	cfg := NewConfig(opts...)
	x := newExtraction(cfg, opt, readerPath)
	x.visit = fn
	return x.run(ctx, func() (*source, error) { return openReader(r, cfg) })
}

// extraction holds the state of one run over an archive. Accepted entries
// are either collected into files or passed to visit.
type extraction struct {
	cfg  *Config
	opt  Option
	path string
	td   *TelemetryData

	files map[string][]byte
	visit WalkFunc

	// extracted is the number of bytes read from accepted entries
	extracted atomic.Int64
}

func newExtraction(cfg *Config, opt Option, path string) *extraction {
	return &extraction{cfg: cfg, opt: opt, path: path, td: &TelemetryData{}}
}

// handleError increases the error counter, sets the latest error and wraps
// err into an [*Error].
func (x *extraction) handleError(op string, err error) error {
	x.td.ExtractionErrors++
	x.td.LastExtractionError = err
	x.cfg.Logger().Debug("extraction failed", "op", op, "path", x.path, "error", err)
	return &Error{Op: op, Path: x.path, Err: err}
}

// run opens the input, detects the archive and walks its entries.
func (x *extraction) run(ctx context.Context, open func() (*source, error)) error {
	defer x.cfg.TelemetryHook()(ctx, x.td)
	defer captureExtractionDuration(x.td, now())

	if x.files == nil && x.visit == nil {
		return x.handleError("walk", errors.New("nil WalkFunc"))
	}

	src, err := open()
	if err != nil {
		return x.handleError("open", err)
	}
	defer src.Close()

	walker, inner, err := x.openArchive(src)
	if err != nil {
		return x.handleError("open", err)
	}
	if inner != nil {
		defer inner.Close()
	}

	x.cfg.Logger().Info("start extraction", "type", x.td.ArchiveType, "path", x.path)
	if x.cfg.Concurrency() > 1 && walker.Concurrent() {
		err = x.walkParallel(ctx, walker)
	} else {
		err = x.walkSequential(ctx, walker)
	}
	if err != nil {
		return err
	}

	x.cfg.Logger().Info("extraction finished", "files", x.td.ExtractedFiles, "size", x.td.ExtractionSize)
	return nil
}

// openArchive detects the format of src and returns a walker over its
// entries. If src is a compressed container, it is unwrapped into a second
// source that is returned as well and must be closed by the caller.
func (x *extraction) openArchive(src *source) (archiveWalker, *source, error) {
	x.td.InputSize = src.size
	if x.cfg.MaxInputSize() != -1 && src.size > x.cfg.MaxInputSize() {
		return nil, nil, ErrMaxInputSizeExceeded
	}

	header, err := src.header()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot read header")
	}

	// unwrap compressed containers
	if x.cfg.Decompression() && !isArchive(header) {
		if d := findDecompressor(header, x.path); d != nil {
			inner, err := decompress(io.NewSectionReader(src.ra, 0, src.size), d, x.cfg)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "cannot decompress %s stream", d.FileExtension)
			}
			walker, err := x.newWalker(inner)
			if err != nil {
				inner.Close()
				return nil, nil, err
			}
			x.td.InputSize = inner.size
			return walker, inner, nil
		}
	}

	walker, err := x.newWalker(src)
	if err != nil {
		return nil, nil, err
	}
	return walker, nil, nil
}

// isArchive checks if header belongs to a supported archive format.
func isArchive(header []byte) bool {
	return isZip(header) || is7zip(header) || isRar(header)
}

// newWalker creates the walker matching the format of src.
func (x *extraction) newWalker(src *source) (archiveWalker, error) {
	header, err := src.header()
	if err != nil {
		return nil, errors.Wrap(err, "cannot read header")
	}

	var walker archiveWalker
	switch {
	case is7zip(header):
		w, err := newSevenZipWalker(src.ra, src.size)
		if err != nil {
			return nil, errors.Wrap(err, "cannot create 7zip reader")
		}
		walker = w

	case isRar(header):
		w, err := newRarWalker(src.ra, src.size)
		if err != nil {
			return nil, errors.Wrap(err, "cannot create rar decoder")
		}
		walker = w

	// everything else is read as zip, the central directory is located from
	// the end of the input and executable jars start with a launch script
	default:
		w, err := newZipWalker(src.ra, src.size)
		if err != nil {
			if isZip(header) {
				return nil, errors.Wrap(err, "cannot read zip directory")
			}
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedArchive, err)
		}
		walker = w
	}

	x.td.ArchiveType = walker.Type()
	if src.compression != "" {
		x.td.ArchiveType = fmt.Sprintf("%s.%s", walker.Type(), src.compression)
	}
	return walker, nil
}

// nextAccepted advances w to the next entry that is extracted and returns
// its normalized name. It returns io.EOF after the last entry.
func (x *extraction) nextAccepted(ctx context.Context, w archiveWalker) (string, archiveEntry, error) {
	for {
		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		ae, err := w.Next()
		switch {

		// if no more entries are found exit loop
		case err == io.EOF:
			return "", nil, io.EOF

		// return any other error
		case err != nil:
			return "", nil, errors.Wrap(err, "cannot read next entry")

		// skip empty records
		case ae == nil:
			continue
		}

		x.td.Entries++
		if err := x.cfg.CheckMaxFiles(x.td.Entries); err != nil {
			return "", nil, err
		}

		if name, ok := x.accept(ae); ok {
			return name, ae, nil
		}
	}
}

// accept decides if ae is extracted and records the reason if not.
func (x *extraction) accept(ae archiveEntry) (string, bool) {
	name, ok := normalizeName(ae.Name())
	if !ok {
		x.cfg.Logger().Debug("skipping entry (unsafe path)", "name", ae.Name())
		x.td.UnsafePaths++
		x.td.LastUnsafePath = ae.Name()
		return "", false
	}

	if ae.IsDir() {
		x.td.SkippedDirs++
		return "", false
	}

	if !x.opt.Match(name) {
		x.cfg.Logger().Debug("skipping entry (filter mismatch)", "name", name)
		x.td.FilterMismatches++
		return "", false
	}

	return name, true
}

// readEntry decompresses ae completely while enforcing the size limits.
func (x *extraction) readEntry(name string, ae archiveEntry) ([]byte, error) {

	// reject early based on the declared size, the real size is checked while reading
	maxEntry := x.cfg.MaxEntrySize()
	if maxEntry != -1 && ae.Size() > maxEntry {
		return nil, errors.Wrapf(ErrMaxEntrySizeExceeded, "entry %s", name)
	}
	if err := x.cfg.CheckExtractionSize(x.extracted.Load() + ae.Size()); err != nil {
		return nil, errors.Wrapf(err, "entry %s", name)
	}

	rc, err := ae.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open entry %s", name)
	}
	defer rc.Close()

	var r io.Reader = rc
	if maxEntry != -1 {
		r = newLimitErrorReader(r, maxEntry, ErrMaxEntrySizeExceeded)
	}
	if maxTotal := x.cfg.MaxExtractionSize(); maxTotal != -1 {
		remaining := maxTotal - x.extracted.Load()
		if remaining < 0 {
			return nil, errors.Wrapf(ErrMaxExtractionSizeExceeded, "entry %s", name)
		}
		r = newLimitErrorReader(r, remaining, ErrMaxExtractionSizeExceeded)
	}

	var buf bytes.Buffer
	if hint := ae.Size(); hint > 0 {
		buf.Grow(int(min(hint, maxSizeHint)))
	}
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, errors.Wrapf(err, "cannot read entry %s", name)
	}

	// parallel readers share the budget, check the sum again
	if err := x.cfg.CheckExtractionSize(x.extracted.Add(int64(buf.Len()))); err != nil {
		return nil, errors.Wrapf(err, "entry %s", name)
	}
	return buf.Bytes(), nil
}

// emit stores or visits an extracted entry.
func (x *extraction) emit(name string, data []byte) error {
	if x.files == nil {
		if err := x.visit(name, data); err != nil {
			return err
		}
	} else {
		if _, ok := x.files[name]; ok {
			x.cfg.Logger().Debug("overwriting entry with same path", "name", name)
			x.td.OverwrittenFiles++
		}
		x.files[name] = data
	}

	x.td.ExtractedFiles++
	x.td.ExtractionSize += int64(len(data))
	return nil
}

// emitOrStop calls emit and maps [fs.SkipAll] to a regular end of the walk.
func (x *extraction) emitOrStop(name string, data []byte) (stop bool, err error) {
	if err := x.emit(name, data); err != nil {
		if errors.Is(err, fs.SkipAll) {
			return true, nil
		}
		return true, x.handleError("visit", err)
	}
	return false, nil
}

// walkSequential reads the accepted entries of w one after another.
func (x *extraction) walkSequential(ctx context.Context, w archiveWalker) error {
	for {
		name, ae, err := x.nextAccepted(ctx, w)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return x.handleError("walk", err)
		}

		x.cfg.Logger().Debug("extract", "name", name)
		data, err := x.readEntry(name, ae)
		if err != nil {
			return x.handleError("read", err)
		}

		if stop, err := x.emitOrStop(name, data); stop {
			return err
		}
	}
}

// walkParallel collects the accepted entries of w, decompresses them with
// the configured concurrency and emits them in directory order afterwards,
// so the outcome equals a sequential walk.
func (x *extraction) walkParallel(ctx context.Context, w archiveWalker) error {
	type job struct {
		name  string
		entry archiveEntry
		data  []byte
	}

	var jobs []*job
	for {
		name, ae, err := x.nextAccepted(ctx, w)
		if err == io.EOF {
			break
		}
		if err != nil {
			return x.handleError("walk", err)
		}
		jobs = append(jobs, &job{name: name, entry: ae})
	}

	x.cfg.Logger().Debug("extract in parallel", "entries", len(jobs), "concurrency", x.cfg.Concurrency())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(x.cfg.Concurrency())
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := x.readEntry(j.name, j.entry)
			if err != nil {
				return err
			}
			j.data = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return x.handleError("read", err)
	}

	for _, j := range jobs {
		if stop, err := x.emitOrStop(j.name, j.data); stop {
			return err
		}
	}
	return nil
}
