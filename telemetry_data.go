// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"context"
	"encoding/json"
	"time"
)

// TelemetryData holds the counters of one extraction run.
type TelemetryData struct {
	// ArchiveType is the detected container, e.g. "zip" or "zip.gz"
	ArchiveType string `json:"archive_type"`

	// Entries is the number of entries walked in the archive directory
	Entries int64 `json:"entries"`

	// ExtractedFiles is the number of entries returned to the caller
	ExtractedFiles int64 `json:"extracted_files"`

	// ExtractionDuration is the time it took to process the archive
	ExtractionDuration time.Duration `json:"extraction_duration"`

	// ExtractionErrors is the number of errors during extraction
	ExtractionErrors int64 `json:"extraction_errors"`

	// ExtractionSize is the sum of the sizes of all extracted entries
	ExtractionSize int64 `json:"extraction_size"`

	// FilterMismatches is the number of file entries rejected by the [Option]
	FilterMismatches int64 `json:"filter_mismatches"`

	// InputSize is the size of the archive, after unwrapping a compressed container
	InputSize int64 `json:"input_size"`

	// LastExtractionError is the last error during extraction
	LastExtractionError error `json:"last_extraction_error"`

	// OverwrittenFiles counts entries replaced by a later entry with the same path
	OverwrittenFiles int64 `json:"overwritten_files"`

	// SkippedDirs is the number of directory entries
	SkippedDirs int64 `json:"skipped_dirs"`

	// UnsafePaths is the number of entries skipped because of their path
	UnsafePaths int64 `json:"unsafe_paths"`

	// LastUnsafePath is the raw name of the last entry skipped because of its path
	LastUnsafePath string `json:"last_unsafe_path"`
}

// String returns a string representation of [TelemetryData].
func (td TelemetryData) String() string {
	b, _ := json.Marshal(td)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (td TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if td.LastExtractionError != nil {
		lastError = td.LastExtractionError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastExtractionError string `json:"last_extraction_error"`
		*Alias
	}{
		LastExtractionError: lastError,
		Alias:               (*Alias)(&td),
	})
}

// TelemetryHook is called with the [TelemetryData] of every extraction
// after it has finished, whether it failed or not.
type TelemetryHook func(context.Context, *TelemetryData)

// captureExtractionDuration stores the time passed since start.
func captureExtractionDuration(td *TelemetryData, start time.Time) {
	td.ExtractionDuration = now().Sub(start)
}
