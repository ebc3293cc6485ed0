// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"context"
	"io"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config holds the runtime settings of an extraction. Which entries are
// extracted is decided by an [Option]; Config controls how the archive is
// read, limits and diagnostics.
//
// The default configuration reproduces an unlimited, sequential, silent
// extraction. Limits are opt-in.
type Config struct {
	// cacheInMemory caches streamed or unwrapped input in memory instead
	// of a temporary file
	cacheInMemory bool

	// concurrency is the number of entries decompressed in parallel
	concurrency int

	// decompression enables unwrapping of compressed containers, e.g. rt.jar.gz
	decompression bool

	// logger stream for extraction
	logger Logger

	// maxEntrySize is the maximum size of a single extracted entry.
	// Set value to -1 to disable the check.
	maxEntrySize int64

	// maxExtractionSize is the maximum size over all extracted entries.
	// Set value to -1 to disable the check.
	maxExtractionSize int64

	// maxFiles is the maximum of entries (including directories) in an archive.
	// Set value to -1 to disable the check.
	maxFiles int64

	// maxInputSize is the maximum size of the input.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// memoryMap maps the archive file into memory where supported
	memoryMap bool

	// telemetryHook is a function to consume telemetry data after finished extraction
	telemetryHook TelemetryHook
}

// CacheInMemory returns true if input that must be buffered is kept in
// memory. If false, a temporary file is used.
func (c *Config) CacheInMemory() bool {
	return c.cacheInMemory
}

// CheckMaxFiles checks if counter exceeds the configured maximum. If the maximum is exceeded,
// a [ErrMaxFilesExceeded] error is returned.
func (c *Config) CheckMaxFiles(counter int64) error {

	// check if disabled
	if c.MaxFiles() == -1 {
		return nil
	}

	// check value
	if counter > c.MaxFiles() {
		return ErrMaxFilesExceeded
	}
	return nil
}

// CheckExtractionSize checks if size exceeds configured maximum. If the maximum is exceeded,
// a [ErrMaxExtractionSizeExceeded] error is returned.
func (c *Config) CheckExtractionSize(size int64) error {

	// check if disabled
	if c.MaxExtractionSize() == -1 {
		return nil
	}

	// check value
	if size > c.MaxExtractionSize() {
		return ErrMaxExtractionSizeExceeded
	}
	return nil
}

// Concurrency returns the number of entries that are decompressed in parallel.
func (c *Config) Concurrency() int {
	return c.concurrency
}

// Decompression returns true if compressed containers are unwrapped before
// the archive is read.
func (c *Config) Decompression() bool {
	return c.decompression
}

// Logger returns the logger.
func (c *Config) Logger() Logger {
	return c.logger
}

// MaxEntrySize returns the maximum size of a single extracted entry.
func (c *Config) MaxEntrySize() int64 {
	return c.maxEntrySize
}

// MaxExtractionSize returns the maximum size over all extracted entries.
func (c *Config) MaxExtractionSize() int64 {
	return c.maxExtractionSize
}

// MaxFiles returns the maximum of entries (including directories) in an archive.
func (c *Config) MaxFiles() int64 {
	return c.maxFiles
}

// MaxInputSize returns the maximum size of the input.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// MemoryMap returns true if archive files are mapped into memory.
func (c *Config) MemoryMap() bool {
	return c.memoryMap
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

const (
	defaultCacheInMemory     = false // cache on disk
	defaultConcurrency       = 1     // sequential extraction
	defaultDecompression     = true  // unwrap compressed containers
	defaultMaxEntrySize      = -1    // no limit
	defaultMaxExtractionSize = -1    // no limit
	defaultMaxFiles          = -1    // no limit
	defaultMaxInputSize      = -1    // no limit
	defaultMemoryMap         = false // read through the file handle
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		cacheInMemory:     defaultCacheInMemory,
		concurrency:       defaultConcurrency,
		decompression:     defaultDecompression,
		logger:            defaultLogger,
		maxEntrySize:      defaultMaxEntrySize,
		maxExtractionSize: defaultMaxExtractionSize,
		maxFiles:          defaultMaxFiles,
		maxInputSize:      defaultMaxInputSize,
		memoryMap:         defaultMemoryMap,
		telemetryHook:     defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithCacheInMemory options pattern function to keep buffered input in
// memory. Input is buffered if it is read from a stream that cannot be
// seeked or if a compressed container is unwrapped.
//
// If set to false, the cache is stored on disk to avoid memory exhaustion.
func WithCacheInMemory(cache bool) ConfigOption {
	return func(c *Config) {
		c.cacheInMemory = cache
	}
}

// WithConcurrency options pattern function to decompress up to n accepted
// zip entries in parallel. Values below 1 are treated as 1. The result is
// the same as for a sequential extraction.
func WithConcurrency(n int) ConfigOption {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}

// WithDecompression options pattern function to enable/disable unwrapping
// of compressed containers such as rt.jar.gz.
func WithDecompression(enable bool) ConfigOption {
	return func(c *Config) {
		c.decompression = enable
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxEntrySize options pattern function to set the maximum size of a
// single extracted entry. (-1 to disable check)
func WithMaxEntrySize(maxEntrySize int64) ConfigOption {
	return func(c *Config) {
		c.maxEntrySize = maxEntrySize
	}
}

// WithMaxExtractionSize options pattern function to set maximum size over all
// extracted entries. (-1 to disable check)
func WithMaxExtractionSize(maxExtractionSize int64) ConfigOption {
	return func(c *Config) {
		c.maxExtractionSize = maxExtractionSize
	}
}

// WithMaxFiles options pattern function to set maximum number of entries,
// including directories, in an archive. (-1 to disable check)
func WithMaxFiles(maxFiles int64) ConfigOption {
	return func(c *Config) {
		c.maxFiles = maxFiles
	}
}

// WithMaxInputSize options pattern function to set the maximum size of the
// archive. For compressed containers, the limit applies to the unwrapped
// archive. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithMemoryMap options pattern function to map archive files read-only into
// memory instead of reading them through the file handle. Only supported on
// unix; ignored elsewhere.
func WithMemoryMap(enable bool) ConfigOption {
	return func(c *Config) {
		c.memoryMap = enable
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is called after extraction.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
