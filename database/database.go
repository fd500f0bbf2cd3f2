package database

import (
	"context"
)

// Record is the unit stored in the vector database: one chunk of text, its
// provenance, and (held by the store) its embedding vector.
type Record struct {
	ID         string
	Content    string
	Source     string // source filename
	ChunkIndex int    // ordinal of the chunk within its source document
	CreatedAt  int64
}

// Match is a search hit. Distance is the store's cosine distance to the
// query vector; lower is better.
type Match struct {
	Record
	Distance float32
}

// VectorDatabase defines the vector store boundary. The store owns the
// records; this layer only creates and queries them. Consistency across
// concurrent callers is whatever the remote store provides.
type VectorDatabase interface {
	// InsertRecord stores a record together with its embedding vector.
	InsertRecord(ctx context.Context, rec *Record, vector []float32) error

	// SearchNearest returns up to limit records nearest to the query vector,
	// ordered by ascending distance (best first).
	SearchNearest(ctx context.Context, vector []float32, limit int) ([]Match, error)

	// ReInit drops and recreates the underlying collection.
	ReInit(ctx context.Context) error
}
