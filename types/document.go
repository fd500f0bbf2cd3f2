package types

// DocumentChunk is one fixed word-count segment of an uploaded document,
// the unit of indexing.
type DocumentChunk struct {
	Content string // the chunk text
	Index   int    // ordinal of the chunk within its document, starting at 0
	Source  string // source filename the chunk came from
}

// UploadRecord is the registry row written after a document has been fully
// ingested. The chunk text and vectors live in the vector store only; this
// is bookkeeping.
type UploadRecord struct {
	ID           string   `bson:"_id,omitempty" json:"id"`
	OriginalName string   `bson:"original_name" json:"original_name"`
	StoredName   string   `bson:"stored_name" json:"stored_name"`
	FileType     string   `bson:"file_type" json:"file_type"`
	ChunkCount   int      `bson:"chunk_count" json:"chunk_count"`
	RecordIDs    []string `bson:"record_ids" json:"record_ids"`
	CreatedAt    int64    `bson:"created_at" json:"created_at"`
}

// ChunkServiceConfig contains configuration options for text chunking
type ChunkServiceConfig struct {
	WordsPerChunk int // Number of words per chunk
}
