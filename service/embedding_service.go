package service

import (
	"context"
	"fmt"
	"time"

	"github.com/openkb/docsearch-be/types"
	"github.com/sashabaranov/go-openai"
)

// Embedder produces a fixed-dimension vector for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// OpenAIEmbeddingService calls an OpenAI-compatible embeddings endpoint.
// Transient failures are retried a bounded number of times; anything that
// survives the retries is surfaced as ErrEmbeddingService.
type OpenAIEmbeddingService struct {
	client     *openai.Client
	model      string
	maxRetries int
}

func NewOpenAIEmbeddingService(baseURL, apiKey, model string) *OpenAIEmbeddingService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIEmbeddingService{
		client:     client,
		model:      model,
		maxRetries: 2,
	}
}

func (s *OpenAIEmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay(attempt - 1))
		}
		resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: []string{text},
			Model: openai.EmbeddingModel(s.model),
		})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("no embedding returned")
			continue
		}
		return resp.Data[0].Embedding, nil
	}
	return nil, fmt.Errorf("%w: %v", types.ErrEmbeddingService, lastErr)
}

func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	base := 200 * time.Millisecond
	// exponential backoff capped at 5s
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
