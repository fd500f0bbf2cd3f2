package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/openkb/docsearch-be/repository"
	"github.com/openkb/docsearch-be/types"
)

type DocumentHandler struct {
	uploadDir  string
	uploadRepo repository.UploadRepo // nil when no registry is configured
}

func NewDocumentHandler(uploadDir string, uploadRepo repository.UploadRepo) *DocumentHandler {
	return &DocumentHandler{
		uploadDir:  uploadDir,
		uploadRepo: uploadRepo,
	}
}

// HandleListUploads returns the upload registry, newest first.
func (h *DocumentHandler) HandleListUploads(c *gin.Context) {
	if h.uploadRepo == nil {
		c.JSON(http.StatusNotImplemented, types.DataResponse{
			Status:  "error",
			Message: "upload registry is not configured",
		})
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if limit <= 0 {
		limit = 50
	}

	uploads, err := h.uploadRepo.ListUploads(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: "Failed to list uploads: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   types.ListUploadsResponse{Uploads: uploads},
	})
}

// ServeDocument streams a stored PDF back to the client. Uploads are stored
// under a timestamped name, so the requested name is matched against
// name_timestamp.pdf as well.
func (h *DocumentHandler) ServeDocument(c *gin.Context) {
	requestedName := c.Query("file")
	if requestedName == "" {
		c.String(http.StatusBadRequest, "File parameter is required")
		return
	}

	if filepath.Ext(requestedName) != ".pdf" {
		c.String(http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	actualFile, err := h.findFileWithTimestamp(requestedName)
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", requestedName))
	c.File(filepath.Join(h.uploadDir, actualFile))
}

func (h *DocumentHandler) findFileWithTimestamp(requestedName string) (string, error) {
	files, err := os.ReadDir(h.uploadDir)
	if err != nil {
		return "", err
	}

	baseName := strings.TrimSuffix(requestedName, ".pdf")
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".pdf") {
			continue
		}

		nameWithoutExt := strings.TrimSuffix(name, ".pdf")
		if nameWithoutExt == baseName {
			return name, nil
		}

		lastUnderscoreIdx := strings.LastIndex(nameWithoutExt, "_")
		if lastUnderscoreIdx == -1 {
			continue
		}

		timestampPart := nameWithoutExt[lastUnderscoreIdx+1:]
		fileBaseName := nameWithoutExt[:lastUnderscoreIdx]

		// Unix timestamps are 10 (seconds) or 13 (millis) digits
		if len(timestampPart) == 10 || len(timestampPart) == 13 {
			if _, err := strconv.ParseInt(timestampPart, 10, 64); err == nil {
				if fileBaseName == baseName {
					return name, nil
				}
			}
		}
	}

	return "", fmt.Errorf("file not found: %s", requestedName)
}
