// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"errors"
	"io"
	"strings"
	"testing"
)

var errTestLimit = errors.New("limit exceeded")

func TestLimitErrorReaderRead(t *testing.T) {
	tests := []struct {
		name       string
		limit      int64
		input      string
		bufferSize int
		expectN    int
		wantErr    bool
	}{
		{
			name:       "Under limit",
			limit:      10,
			input:      "12345",
			bufferSize: 5,
			expectN:    5,
			wantErr:    false,
		},
		{
			name:       "At limit",
			limit:      5,
			input:      "12345",
			bufferSize: 5,
			expectN:    5,
			wantErr:    false,
		},
		{
			name:       "Over limit",
			limit:      4,
			input:      "12345",
			bufferSize: 5,
			expectN:    4,
			wantErr:    true,
		},
		{
			name:       "Under limit with buffer",
			limit:      10,
			input:      "12345",
			bufferSize: 2,
			expectN:    2,
			wantErr:    false,
		},
		{
			name:       "Unlimited",
			limit:      -1,
			input:      "12345",
			bufferSize: 5,
			expectN:    5,
			wantErr:    false,
		},
		{
			name:       "Zero limit",
			limit:      0,
			input:      "1",
			bufferSize: 5,
			expectN:    0,
			wantErr:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := newLimitErrorReader(strings.NewReader(test.input), test.limit, errTestLimit)
			buf := make([]byte, test.bufferSize)
			n, err := l.Read(buf)
			if (err != nil) != test.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, test.wantErr)
			}
			if test.wantErr && !errors.Is(err, errTestLimit) {
				t.Fatalf("Read() error = %v, want %v", err, errTestLimit)
			}
			if n != test.expectN {
				t.Errorf("Read() = %v, want %v", n, test.expectN)
			}
		})
	}
}

// TestLimitErrorReaderReadAll reads until the end of the input or the error.
func TestLimitErrorReaderReadAll(t *testing.T) {
	tests := []struct {
		name    string
		limit   int64
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty input", limit: 0, input: "", want: ""},
		{name: "exact limit", limit: 5, input: "12345", want: "12345"},
		{name: "one byte over", limit: 4, input: "12345", want: "1234", wantErr: true},
		{name: "far over", limit: 2, input: strings.Repeat("x", 4096), want: "xx", wantErr: true},
		{name: "unlimited", limit: -1, input: strings.Repeat("x", 4096), want: strings.Repeat("x", 4096)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := newLimitErrorReader(strings.NewReader(test.input), test.limit, errTestLimit)
			got, err := io.ReadAll(l)
			if (err != nil) != test.wantErr {
				t.Fatalf("ReadAll() error = %v, wantErr %v", err, test.wantErr)
			}
			if string(got) != test.want {
				t.Errorf("ReadAll() = %q, want %q", got, test.want)
			}

			// reading again after the limit keeps failing
			if test.wantErr {
				if _, err := l.Read(make([]byte, 8)); !errors.Is(err, errTestLimit) {
					t.Errorf("Read() after limit error = %v, want %v", err, errTestLimit)
				}
			}
		})
	}
}

func TestLimitErrorReaderReadBytes(t *testing.T) {
	l := newLimitErrorReader(strings.NewReader("12345"), -1, errTestLimit)
	if _, err := io.Copy(io.Discard, l); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if l.ReadBytes() != 5 {
		t.Errorf("ReadBytes() = %d, want 5", l.ReadBytes())
	}
}
