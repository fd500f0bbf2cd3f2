package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SanitizeFileName replaces anything outside [a-zA-Z0-9-_.] with '_'.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// TimestampedName builds the stored filename for an upload:
// sanitizedbase_unixtimestamp.ext
func TimestampedName(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	return fmt.Sprintf("%s_%d%s", SanitizeFileName(base), time.Now().Unix(), ext)
}

// CopyFileWithTimestamp copies a file into the upload directory under a
// timestamped name and returns the destination path. The source file is
// never modified.
func CopyFileWithTimestamp(sourcePath, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %v", err)
	}

	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %v", err)
	}
	defer sourceFile.Close()

	destPath := filepath.Join(uploadDir, TimestampedName(sourcePath))
	destFile, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return "", fmt.Errorf("failed to copy file: %v", err)
	}

	return destPath, nil
}
