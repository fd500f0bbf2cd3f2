package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openkb/docsearch-be/database"
	"github.com/openkb/docsearch-be/types"
)

// IndexService is the embed-and-index core. It holds the embedding client
// and vector store handed to it at construction and owns no storage of its
// own; consistency under concurrent callers is the remote store's contract.
type IndexService struct {
	embedder Embedder
	vectorDB database.VectorDatabase
}

func NewIndexService(embedder Embedder, vectorDB database.VectorDatabase) *IndexService {
	return &IndexService{
		embedder: embedder,
		vectorDB: vectorDB,
	}
}

// Index embeds one chunk and stores it under a fresh uuid together with its
// source filename and chunk ordinal, returning the id. There is no retry
// here beyond what the clients do, and no rollback of chunks stored by
// earlier calls.
func (s *IndexService) Index(ctx context.Context, chunk types.DocumentChunk) (string, error) {
	vector, err := s.embedder.Embed(ctx, chunk.Content)
	if err != nil {
		return "", err
	}

	record := &database.Record{
		ID:         uuid.New().String(),
		Content:    chunk.Content,
		Source:     chunk.Source,
		ChunkIndex: chunk.Index,
		CreatedAt:  time.Now().Unix(),
	}
	if err := s.vectorDB.InsertRecord(ctx, record, vector); err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrStoreService, err)
	}
	return record.ID, nil
}

// Search embeds the query and returns up to limit stored chunks, best
// first. Score is the store's cosine distance: lower is better.
func (s *IndexService) Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := s.vectorDB.SearchNearest(ctx, vector, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreService, err)
	}

	results := make([]types.SearchResult, 0, len(matches))
	for _, match := range matches {
		results = append(results, types.SearchResult{
			Content: match.Content,
			Source:  match.Source,
			Score:   match.Distance,
		})
	}
	return results, nil
}
