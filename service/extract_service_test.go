package service

import (
	"os"
	"path/filepath"
	"testing"

	"baliance.com/gooxml/document"
	"github.com/openkb/docsearch-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRejectsUnsupportedFormat(t *testing.T) {
	extractor := NewExtractService()

	for _, name := range []string{"notes.txt", "archive.zip", "noextension"} {
		_, err := extractor.Extract(filepath.Join(t.TempDir(), name))
		assert.ErrorIs(t, err, types.ErrUnsupportedFormat, name)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	extractor := NewExtractService()
	_, err := extractor.Extract(path)

	assert.ErrorIs(t, err, types.ErrExtraction)
}

func TestExtractDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")

	doc := document.New()
	para := doc.AddParagraph()
	para.AddRun().AddText("the quick brown fox")
	para2 := doc.AddParagraph()
	para2.AddRun().AddText("jumps over the lazy dog")
	require.NoError(t, doc.SaveToFile(path))

	extractor := NewExtractService()
	text, err := extractor.Extract(path)

	require.NoError(t, err)
	assert.Contains(t, text, "the quick brown fox")
	assert.Contains(t, text, "jumps over the lazy dog")
}

func TestExtractLegacyDocSurfacesExtractionError(t *testing.T) {
	// A binary .doc the OOXML reader cannot open must fail loudly, not
	// silently produce empty text.
	path := filepath.Join(t.TempDir(), "old.doc")
	require.NoError(t, os.WriteFile(path, []byte{0xD0, 0xCF, 0x11, 0xE0, 0x00}, 0644))

	extractor := NewExtractService()
	_, err := extractor.Extract(path)

	assert.ErrorIs(t, err, types.ErrExtraction)
}
