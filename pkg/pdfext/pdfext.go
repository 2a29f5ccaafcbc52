// Package pdfext extracts plain text from PDF documents held in memory.
package pdfext

import (
	"bytes"
	"errors"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrExtractFailed is returned when the document cannot be parsed.
	ErrExtractFailed = errors.New("unable to extract text from the PDF")
	// ErrNoText is returned when parsing succeeds but yields no text.
	ErrNoText = errors.New("no text could be extracted from the PDF")
)

// ExtractText parses the PDF bytes and returns the trimmed plain text.
func ExtractText(data []byte) (text string, err error) {
	// The underlying parser panics on some malformed documents.
	defer func() {
		if recover() != nil {
			text, err = "", ErrExtractFailed
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", ErrExtractFailed
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", ErrExtractFailed
		}
		sb.WriteString(text)
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", ErrNoText
	}
	return out, nil
}
