package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	services "github.com/openkb/docsearch-be/service"
	"github.com/openkb/docsearch-be/types"
)

// Searcher is the query side of the embed-and-index core.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error)
}

type SearchHandler struct {
	searcher  Searcher
	aiService services.AIService // nil disables answer synthesis
	topK      int
}

func NewSearchHandler(searcher Searcher, aiService services.AIService, topK int) *SearchHandler {
	if topK <= 0 {
		topK = 5
	}
	return &SearchHandler{
		searcher:  searcher,
		aiService: aiService,
		topK:      topK,
	}
}

func (h *SearchHandler) HandleSearch(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Query is required",
		})
		return
	}
	if req.Limit <= 0 {
		req.Limit = h.topK
	}

	results, err := h.searcher.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		c.JSON(searchErrorStatus(err), types.DataResponse{
			Status:  "error",
			Message: "Search failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   types.SearchResponse{Results: results},
	})
}

// HandleAsk runs the similarity search and feeds the retrieved chunks to
// the generation model. When generation fails the raw similarity results
// are still returned together with the failure message.
func (h *SearchHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}
	if req.Question == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Question is required",
		})
		return
	}
	if req.Limit <= 0 {
		req.Limit = h.topK
	}

	results, err := h.searcher.Search(c.Request.Context(), req.Question, req.Limit)
	if err != nil {
		c.JSON(searchErrorStatus(err), types.DataResponse{
			Status:  "error",
			Message: "Search failed: " + err.Error(),
		})
		return
	}

	res := types.AskResponse{Results: results}
	if h.aiService == nil {
		res.GenerationError = "answer synthesis is disabled"
	} else {
		contexts := make([]string, 0, len(results))
		for _, result := range results {
			contexts = append(contexts, result.Content)
		}
		answer, err := h.aiService.Answer(c.Request.Context(), req.Question, contexts)
		if err != nil {
			res.GenerationError = err.Error()
		} else {
			res.Answer = answer
		}
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   res,
	})
}

func searchErrorStatus(err error) int {
	if errors.Is(err, types.ErrEmbeddingService) || errors.Is(err, types.ErrStoreService) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
