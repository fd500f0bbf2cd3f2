package types

import "errors"

// Failure taxonomy for the ingestion/search pipeline. Callers match with
// errors.Is; the concrete cause is carried by the wrapping message.
var (
	// ErrUnsupportedFormat rejects files whose extension is not pdf/doc/docx.
	// Raised before any extraction or indexing happens.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtraction marks a corrupt or unparseable document.
	ErrExtraction = errors.New("text extraction failed")

	// ErrEmbeddingService marks a failure of the remote embedding model.
	ErrEmbeddingService = errors.New("embedding service error")

	// ErrStoreService marks a failure of the vector store.
	ErrStoreService = errors.New("vector store error")

	// ErrGenerationService marks a failure of the text-generation model.
	// Search callers fall back to raw similarity results when they see it.
	ErrGenerationService = errors.New("generation service error")
)
