// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractMissingFile(t *testing.T) {
	e := NewPDFExtractor()
	if _, err := e.Extract(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("Extract on missing file = nil error, want error")
	}
}

func TestExtractNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewPDFExtractor()
	if _, err := e.Extract(path); err == nil {
		t.Fatal("Extract on garbage file = nil error, want error")
	}
}

func TestExtractEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewPDFExtractor()
	if _, err := e.Extract(path); err == nil {
		t.Fatal("Extract on empty file = nil error, want error")
	}
}
