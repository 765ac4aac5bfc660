package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

type TextExtractor interface {
	ExtractText(doc models.UploadedDocument) (string, error)
}

type pdfExtractor struct{}

func NewPDFExtractor() TextExtractor {
	return &pdfExtractor{}
}

// ExtractText pulls the plain-text layer out of an in-memory PDF. Pages
// that fail to decode are skipped; a document with no text layer at all
// (e.g. a scanned image) yields an empty string, which is not an error.
func (p *pdfExtractor) ExtractText(doc models.UploadedDocument) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	if len(doc.Data) == 0 {
		return "", &ExtractionError{Err: fmt.Errorf("empty file buffer")}
	}

	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return "", &ExtractionError{Err: fmt.Errorf("failed to open PDF: %w", err)}
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}
