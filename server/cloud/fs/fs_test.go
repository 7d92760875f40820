// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"testing"
)

func TestNew_Offline(t *testing.T) {
	filesystem, err := New("us-east-1", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := filesystem.(Offline); !ok {
		t.Fatalf("expected Offline, got %T", filesystem)
	}
	if err := filesystem.UploadStaticFile("terrain.png", 60, []byte{1, 2, 3}); err != nil {
		t.Error(err)
	}
}

func TestNewS3Filesystem_NoBucket(t *testing.T) {
	if _, err := NewS3Filesystem(nil, ""); err == nil {
		t.Error("expected error")
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"terrain.png", "image/png"},
		{"terrain.json", "application/json"},
		{"terrain.bin", ""},
	}

	for _, test := range tests {
		got := contentType(test.filename)
		if test.expected == "" {
			if got != nil {
				t.Errorf("%s: expected no content type, got %s", test.filename, *got)
			}
			continue
		}
		if got == nil || *got != test.expected {
			t.Errorf("%s: expected %s, got %v", test.filename, test.expected, got)
		}
	}
}
