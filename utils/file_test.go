package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"spaces", "my report.pdf", "my_report.pdf"},
		{"path chars", "a/b\\c.docx", "a_b_c.docx"},
		{"unicode", "bếp.pdf", "b_p.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}

func TestTimestampedNameKeepsExtension(t *testing.T) {
	got := TimestampedName("quarterly report.pdf")
	assert.Regexp(t, regexp.MustCompile(`^quarterly_report_\d+\.pdf$`), got)
}

func TestCopyFileWithTimestamp(t *testing.T) {
	sourceDir := t.TempDir()
	uploadDir := filepath.Join(t.TempDir(), "uploads")

	sourcePath := filepath.Join(sourceDir, "notes.pdf")
	require.NoError(t, os.WriteFile(sourcePath, []byte("pdf bytes"), 0644))

	destPath, err := CopyFileWithTimestamp(sourcePath, uploadDir)
	require.NoError(t, err)

	copied, err := os.ReadFile(destPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), copied)

	original, err := os.ReadFile(sourcePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), original, "source file stays in place")
}

func TestCopyFileWithTimestampMissingSource(t *testing.T) {
	_, err := CopyFileWithTimestamp(filepath.Join(t.TempDir(), "nope.pdf"), t.TempDir())
	assert.Error(t, err)
}
