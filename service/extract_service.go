package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"
	"github.com/openkb/docsearch-be/types"
)

// ExtractService turns PDF and Word documents into plain text. It only ever
// reads the source file.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// Extract returns the full text content of the file at path. The document
// type is taken from the file extension; anything outside pdf/doc/docx is
// rejected with ErrUnsupportedFormat before the file is opened.
func (s *ExtractService) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.extractPDF(path)
	case ".doc", ".docx":
		return s.extractWord(path)
	default:
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// extractPDF concatenates the text of every page in document order. Pages
// are joined with a single newline so a page break can never glue two words
// together; pages without extractable text contribute nothing.
func (s *ExtractService) extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrExtraction, err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := reader.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// An unreadable page counts as a page without text.
			continue
		}
		if sb.Len() > 0 && text != "" {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// extractWord concatenates the run text of every paragraph in document
// order. Images, tables and other non-text elements are skipped. Legacy
// binary .doc files go through the same OOXML reader; ones it cannot open
// surface as an extraction error.
func (s *ExtractService) extractWord(path string) (string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrExtraction, err)
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
