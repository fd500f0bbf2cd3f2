package types

type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type AskRequest struct {
	Question string `json:"question"`
	Limit    int    `json:"limit,omitempty"`
}
