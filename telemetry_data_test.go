// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	jars "github.com/hashicorp/go-jars"
)

// TestDataString tests the String method of the data struct
func TestDataString(t *testing.T) {
	m := jars.TelemetryData{
		ArchiveType:         "zip.gz",
		Entries:             7,
		ExtractedFiles:      5,
		ExtractionDuration:  time.Duration(5 * time.Millisecond),
		ExtractionErrors:    1,
		ExtractionSize:      1024,
		FilterMismatches:    1,
		InputSize:           2048,
		LastExtractionError: fmt.Errorf("example error"),
		OverwrittenFiles:    0,
		SkippedDirs:         1,
		UnsafePaths:         0,
	}

	expected := `{"last_extraction_error":"example error","archive_type":"zip.gz","entries":7,"extracted_files":5,"extraction_duration":5000000,"extraction_errors":1,"extraction_size":1024,"filter_mismatches":1,"input_size":2048,"overwritten_files":0,"skipped_dirs":1,"unsafe_paths":0,"last_unsafe_path":""}`
	if m.String() != expected {
		t.Errorf("Expected '%s', but got '%s'", expected, m.String())
	}
}

// TestDataNoError tests that a missing error is rendered as empty string
func TestDataNoError(t *testing.T) {
	b, err := json.Marshal(&jars.TelemetryData{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m["last_extraction_error"] != "" {
		t.Errorf("last_extraction_error = %v, want empty string", m["last_extraction_error"])
	}
}
