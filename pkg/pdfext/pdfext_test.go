package pdfext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsGarbage(t *testing.T) {
	_, err := ExtractText([]byte("this is not a pdf"))
	assert.ErrorIs(t, err, ErrExtractFailed)
}

func TestExtractTextRejectsEmptyInput(t *testing.T) {
	_, err := ExtractText(nil)
	assert.ErrorIs(t, err, ErrExtractFailed)
}

func TestExtractTextRejectsTruncatedHeader(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-1.7\n"))
	assert.ErrorIs(t, err, ErrExtractFailed)
}
