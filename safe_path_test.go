// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOk bool
	}{
		{raw: "java/lang/Object.class", want: "java/lang/Object.class", wantOk: true},
		{raw: "a/./b/../c.class", want: "a/c.class", wantOk: true},
		{raw: "a//b.class", want: "a/b.class", wantOk: true},
		{raw: `a\b\c.class`, want: "a/b/c.class", wantOk: true},
		{raw: "a/b/", want: "a/b", wantOk: true},
		{raw: "a/../b", want: "b", wantOk: true},
		{raw: "C.class", want: "C.class", wantOk: true},
		{raw: "", wantOk: false},
		{raw: ".", wantOk: false},
		{raw: "a/..", wantOk: false},
		{raw: "..", wantOk: false},
		{raw: "../a", wantOk: false},
		{raw: "a/../../b", wantOk: false},
		{raw: `..\a`, wantOk: false},
		{raw: "/etc/passwd", wantOk: false},
		{raw: `\windows\system32`, wantOk: false},
		{raw: "C:/windows", wantOk: false},
		{raw: `c:\windows`, wantOk: false},
		{raw: "a\x00b", wantOk: false},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			got, ok := normalizeName(test.raw)
			if ok != test.wantOk {
				t.Fatalf("normalizeName(%q) ok = %v, want %v", test.raw, ok, test.wantOk)
			}
			if got != test.want {
				t.Errorf("normalizeName(%q) = %q, want %q", test.raw, got, test.want)
			}
		})
	}
}

func FuzzNormalizeName(f *testing.F) {
	for _, seed := range []string{"a/b.class", "../a", `a\..\..\b`, "/x", "C:x"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, raw string) {
		name, ok := normalizeName(raw)
		if !ok {
			return
		}
		if name == "" || name == "." || name == ".." || name[0] == '/' {
			t.Errorf("normalizeName(%q) = %q escapes the root", raw, name)
		}
		if len(name) >= 3 && name[:3] == "../" {
			t.Errorf("normalizeName(%q) = %q escapes the root", raw, name)
		}
	})
}
