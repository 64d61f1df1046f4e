// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls plain text out of downloaded PDF documents.
package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Extractor turns a local PDF file into plain text. A missing file or any
// internal failure is an error; the pipeline converts it to a per-paper
// failure marker.
type Extractor interface {
	Extract(pdfPath string) (string, error)
}

// PDFExtractor reads PDFs with the ledongthuc/pdf reader.
type PDFExtractor struct{}

// NewPDFExtractor returns the production extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract returns the document's plain text, all pages concatenated.
func (e *PDFExtractor) Extract(pdfPath string) (text string, err error) {
	// The pdf reader panics on some malformed documents; fold that into
	// the error return so a bad artifact stays a per-paper failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting text from %s: %v", pdfPath, r)
		}
	}()

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", pdfPath, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading extracted text from %s: %w", pdfPath, err)
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("no text extracted from %s", pdfPath)
	}
	return buf.String(), nil
}
