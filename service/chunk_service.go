package service

import (
	"strings"

	"github.com/openkb/docsearch-be/types"
)

// ChunkService splits plain text into fixed word-count segments.
type ChunkService struct {
	wordsPerChunk int
}

var DefaultChunkServiceConfig = types.ChunkServiceConfig{
	WordsPerChunk: 100,
}

func NewChunkService(config types.ChunkServiceConfig) *ChunkService {
	if config.WordsPerChunk <= 0 {
		config.WordsPerChunk = DefaultChunkServiceConfig.WordsPerChunk
	}
	return &ChunkService{
		wordsPerChunk: config.WordsPerChunk,
	}
}

// Chunk groups the words of text into consecutive batches of exactly
// wordsPerChunk words; the final batch holds the remainder. Whitespace is
// normalized first, so joining the returned chunks with single spaces
// reproduces the whitespace-normalized input and a boundary never splits a
// word. Empty or all-whitespace input yields no chunks.
func (s *ChunkService) Chunk(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+s.wordsPerChunk-1)/s.wordsPerChunk)
	for start := 0; start < len(words); start += s.wordsPerChunk {
		end := start + s.wordsPerChunk
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
