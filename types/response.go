package types

type DataResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type UploadResponse struct {
	OriginalName string   `json:"original_name"`
	StoredName   string   `json:"stored_name"`
	RecordIDs    []string `json:"record_ids"`
}

// SearchResult pairs a stored chunk with its cosine distance to the query.
// Lower score is better; results are returned best first.
type SearchResult struct {
	Content string  `json:"content"`
	Source  string  `json:"source"`
	Score   float32 `json:"score"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// AskResponse carries the generated answer plus the supporting snippets it
// was grounded on. When generation fails the snippets are still returned and
// GenerationError explains what happened.
type AskResponse struct {
	Answer          string         `json:"answer,omitempty"`
	Results         []SearchResult `json:"results"`
	GenerationError string         `json:"generation_error,omitempty"`
}

type ListUploadsResponse struct {
	Uploads []UploadRecord `json:"uploads"`
}
