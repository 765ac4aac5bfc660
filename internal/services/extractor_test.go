package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

func TestExtractText_EmptyBufferFails(t *testing.T) {
	extractor := NewPDFExtractor()

	_, err := extractor.ExtractText(models.UploadedDocument{
		Data:     nil,
		Filename: "empty.pdf",
	})

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}

func TestExtractText_GarbageBufferFails(t *testing.T) {
	extractor := NewPDFExtractor()

	_, err := extractor.ExtractText(models.UploadedDocument{
		Data:     []byte("this is definitely not a PDF document"),
		Filename: "garbage.pdf",
	})

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}

func TestExtractText_TruncatedPDFFailsNotPanics(t *testing.T) {
	extractor := NewPDFExtractor()

	// A real header with a chopped-off body
	data := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{0x00}, 32)...)

	assert.NotPanics(t, func() {
		_, err := extractor.ExtractText(models.UploadedDocument{
			Data:     data,
			Filename: "truncated.pdf",
		})
		assert.Error(t, err)
	})
}
