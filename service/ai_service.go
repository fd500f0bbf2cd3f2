package service

import (
	"context"
	"fmt"
	"strings"
)

// AIService produces an answer to a question grounded on retrieved chunks.
type AIService interface {
	Answer(ctx context.Context, question string, contexts []string) (string, error)
}

// answerContextLimit caps how many retrieved chunks go into the prompt.
const answerContextLimit = 3

// buildAnswerPrompt composes the fixed generation prompt: the best-scoring
// retrieved chunks first, verbatim, then the question, with an instruction
// to answer only from the given context.
func buildAnswerPrompt(question string, contexts []string) string {
	if len(contexts) > answerContextLimit {
		contexts = contexts[:answerContextLimit]
	}

	var sb strings.Builder
	sb.WriteString("Answer the question using only the following context. ")
	sb.WriteString("If the context does not contain the answer, say that you cannot answer from the provided documents.\n\nContext:\n")
	for i, context := range contexts {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", i+1, context))
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}
