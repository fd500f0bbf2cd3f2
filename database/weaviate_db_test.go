package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaviate/weaviate/entities/models"
)

func graphQLFixture(className string, items []interface{}) *models.GraphQLResponse {
	return &models.GraphQLResponse{
		Data: map[string]models.JSONObject{
			"Get": map[string]interface{}{
				className: items,
			},
		},
	}
}

func TestParseMatches(t *testing.T) {
	resp := graphQLFixture("DocumentChunk", []interface{}{
		map[string]interface{}{
			"content":    "the quick brown fox",
			"source":     "report.pdf",
			"chunkIndex": float64(0),
			"createdAt":  float64(1735689600),
			"_additional": map[string]interface{}{
				"id":       "aaa-111",
				"distance": float64(0.12),
			},
		},
		map[string]interface{}{
			"content":    "lorem ipsum",
			"source":     "report.pdf",
			"chunkIndex": float64(1),
			"createdAt":  float64(1735689600),
			"_additional": map[string]interface{}{
				"id":       "bbb-222",
				"distance": float64(0.44),
			},
		},
	})

	matches, err := parseMatches(resp, "DocumentChunk")

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "aaa-111", matches[0].ID)
	assert.Equal(t, "the quick brown fox", matches[0].Content)
	assert.Equal(t, "report.pdf", matches[0].Source)
	assert.Equal(t, 0, matches[0].ChunkIndex)
	assert.InDelta(t, 0.12, matches[0].Distance, 1e-6)
	assert.Equal(t, 1, matches[1].ChunkIndex)
	assert.LessOrEqual(t, matches[0].Distance, matches[1].Distance)
}

func TestParseMatchesEmptyClass(t *testing.T) {
	resp := graphQLFixture("DocumentChunk", nil)
	// class key present but not a list
	resp.Data["Get"] = map[string]interface{}{}

	matches, err := parseMatches(resp, "DocumentChunk")

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestParseMatchesMissingGet(t *testing.T) {
	resp := &models.GraphQLResponse{Data: map[string]models.JSONObject{}}

	_, err := parseMatches(resp, "DocumentChunk")

	assert.Error(t, err)
}

func TestChunkClassObject(t *testing.T) {
	class := chunkClassObject("DocumentChunk")

	assert.Equal(t, "DocumentChunk", class.Class)
	assert.Equal(t, "none", class.Vectorizer, "vectors are supplied explicitly")

	names := make([]string, 0, len(class.Properties))
	for _, prop := range class.Properties {
		names = append(names, prop.Name)
	}
	assert.ElementsMatch(t, []string{"content", "source", "chunkIndex", "createdAt"}, names)
}
