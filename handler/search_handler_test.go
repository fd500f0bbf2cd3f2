package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openkb/docsearch-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	results   []types.SearchResult
	err       error
	lastQuery string
	lastLimit int
}

func (s *fakeSearcher) Search(_ context.Context, query string, limit int) ([]types.SearchResult, error) {
	s.lastQuery = query
	s.lastLimit = limit
	return s.results, s.err
}

type fakeAI struct {
	answer string
	err    error
}

func (a *fakeAI) Answer(_ context.Context, _ string, _ []string) (string, error) {
	return a.answer, a.err
}

func newRouter(h *SearchHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/search", h.HandleSearch)
	router.POST("/ask", h.HandleAsk)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleSearchReturnsOrderedResults(t *testing.T) {
	searcher := &fakeSearcher{results: []types.SearchResult{
		{Content: "best match", Source: "a.pdf", Score: 0.1},
		{Content: "second match", Source: "b.pdf", Score: 0.4},
	}}
	router := newRouter(NewSearchHandler(searcher, nil, 5))

	rec := postJSON(t, router, "/search", types.SearchRequest{Query: "fox"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fox", searcher.lastQuery)
	assert.Equal(t, 5, searcher.lastLimit, "default top_k applies when limit is omitted")

	var res struct {
		Status string               `json:"status"`
		Data   types.SearchResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Data.Results, 2)
	assert.Equal(t, "best match", res.Data.Results[0].Content)
}

func TestHandleSearchRequiresQuery(t *testing.T) {
	searcher := &fakeSearcher{}
	router := newRouter(NewSearchHandler(searcher, nil, 5))

	rec := postJSON(t, router, "/search", types.SearchRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, searcher.lastQuery)
}

func TestHandleSearchMapsRemoteFailure(t *testing.T) {
	searcher := &fakeSearcher{err: fmt.Errorf("%w: timeout", types.ErrEmbeddingService)}
	router := newRouter(NewSearchHandler(searcher, nil, 5))

	rec := postJSON(t, router, "/search", types.SearchRequest{Query: "fox"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleAskReturnsAnswerWithSnippets(t *testing.T) {
	searcher := &fakeSearcher{results: []types.SearchResult{
		{Content: "the fox is brown", Source: "a.pdf", Score: 0.1},
	}}
	router := newRouter(NewSearchHandler(searcher, &fakeAI{answer: "It is brown."}, 5))

	rec := postJSON(t, router, "/ask", types.AskRequest{Question: "what color is the fox?", Limit: 3})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, searcher.lastLimit)

	var res struct {
		Data types.AskResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "It is brown.", res.Data.Answer)
	require.Len(t, res.Data.Results, 1)
	assert.Empty(t, res.Data.GenerationError)
}

func TestHandleAskFallsBackToRawResultsOnGenerationFailure(t *testing.T) {
	searcher := &fakeSearcher{results: []types.SearchResult{
		{Content: "the fox is brown", Source: "a.pdf", Score: 0.1},
	}}
	ai := &fakeAI{err: fmt.Errorf("%w: model unavailable", types.ErrGenerationService)}
	router := newRouter(NewSearchHandler(searcher, ai, 5))

	rec := postJSON(t, router, "/ask", types.AskRequest{Question: "what color is the fox?"})

	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Data types.AskResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Data.Answer)
	require.Len(t, res.Data.Results, 1, "raw similarity results survive a generation failure")
	assert.Contains(t, res.Data.GenerationError, "model unavailable")
}

func TestHandleAskWithSynthesisDisabled(t *testing.T) {
	searcher := &fakeSearcher{results: []types.SearchResult{
		{Content: "snippet", Source: "a.pdf", Score: 0.2},
	}}
	router := newRouter(NewSearchHandler(searcher, nil, 5))

	rec := postJSON(t, router, "/ask", types.AskRequest{Question: "anything"})

	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Data types.AskResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Data.Answer)
	assert.Len(t, res.Data.Results, 1)
	assert.Contains(t, res.Data.GenerationError, "disabled")
}
