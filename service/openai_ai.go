package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/openkb/docsearch-be/types"
	"github.com/sashabaranov/go-openai"
)

// OpenAIService answers questions through an OpenAI-compatible chat
// completions endpoint.
type OpenAIService struct {
	client     *openai.Client
	model      string
	maxRetries int
}

func NewOpenAIService(baseURL, apiKey, model string, maxRetries int) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // Set this to your local LLM server URL
	}
	client := openai.NewClientWithConfig(config)
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &OpenAIService{
		client:     client,
		model:      model,
		maxRetries: maxRetries,
	}
}

func (s *OpenAIService) Answer(ctx context.Context, question string, contexts []string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildAnswerPrompt(question, contexts),
			},
		},
		// Deterministic sampling; a literal 0 would be dropped by the
		// field's omitempty and fall back to the server default.
		Temperature: math.SmallestNonzeroFloat32,
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay(attempt - 1))
		}
		resp, err := s.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("no response generated")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("%w: %v", types.ErrGenerationService, lastErr)
}
