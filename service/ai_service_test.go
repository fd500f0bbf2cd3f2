package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnswerPromptEmbedsQuestionAndContexts(t *testing.T) {
	prompt := buildAnswerPrompt("what color is the fox?", []string{
		"the quick brown fox",
		"jumps over the lazy dog",
	})

	assert.Contains(t, prompt, "what color is the fox?")
	assert.Contains(t, prompt, "the quick brown fox")
	assert.Contains(t, prompt, "jumps over the lazy dog")
	assert.Contains(t, prompt, "using only the following context")
}

func TestBuildAnswerPromptCapsContexts(t *testing.T) {
	contexts := []string{"one", "two", "three", "four", "five"}

	prompt := buildAnswerPrompt("q", contexts)

	assert.Contains(t, prompt, "[3] three")
	assert.NotContains(t, prompt, "four")
	assert.NotContains(t, prompt, "five")
}

func TestBuildAnswerPromptDeterministic(t *testing.T) {
	contexts := []string{"a", "b"}
	first := buildAnswerPrompt("question", contexts)
	second := buildAnswerPrompt("question", contexts)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasSuffix(first, "Question: question"))
}
