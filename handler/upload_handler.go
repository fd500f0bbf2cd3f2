package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	services "github.com/openkb/docsearch-be/service"
	"github.com/openkb/docsearch-be/types"
)

type UploadHandler struct {
	fileService *services.FileService
}

func NewUploadHandler(fileService *services.FileService) *UploadHandler {
	return &UploadHandler{
		fileService: fileService,
	}
}

func (h *UploadHandler) UploadDocumentHandler(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid file",
		})
		return
	}

	const maxSize = 50 << 20
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "File too large",
		})
		return
	}

	res, err := h.fileService.UploadFile(c.Request.Context(), header)
	if err != nil {
		c.JSON(uploadErrorStatus(err), types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   res,
	})
}

// uploadErrorStatus maps the pipeline's failure taxonomy onto HTTP codes:
// bad input is the caller's fault, remote dependency failures are a bad
// gateway.
func uploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrExtraction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrEmbeddingService), errors.Is(err, types.ErrStoreService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
