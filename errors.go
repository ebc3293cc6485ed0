// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is matched by every error returned from an extraction, use
	// errors.Is(err, ErrIO) to check for it.
	ErrIO = errors.New("jars: i/o failure")

	// ErrUnsupportedArchive is the cause if the input is neither a known
	// archive nor a known compressed stream.
	ErrUnsupportedArchive = errors.New("unsupported archive")

	// ErrMaxFilesExceeded is the cause if the archive holds more entries than
	// configured with [WithMaxFiles].
	ErrMaxFilesExceeded = errors.New("maximum files exceeded")

	// ErrMaxExtractionSizeExceeded is the cause if the accepted entries exceed
	// the size configured with [WithMaxExtractionSize].
	ErrMaxExtractionSizeExceeded = errors.New("maximum extraction size exceeded")

	// ErrMaxEntrySizeExceeded is the cause if a single accepted entry exceeds
	// the size configured with [WithMaxEntrySize].
	ErrMaxEntrySizeExceeded = errors.New("maximum entry size exceeded")

	// ErrMaxInputSizeExceeded is the cause if the input exceeds the size
	// configured with [WithMaxInputSize].
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")
)

// Error describes a failed extraction. Regardless of the cause, every Error
// matches [ErrIO]. The cause can be inspected with errors.Is and errors.As.
type Error struct {
	Op   string // operation that failed, e.g. "open" or "read"
	Path string // archive path, or "-" for readers
	Err  error  // cause
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("jars: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every [Error] match [ErrIO].
func (e *Error) Is(target error) bool {
	return target == ErrIO
}
