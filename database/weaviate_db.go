package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/openkb/docsearch-be/config"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

var DEFAULT_CHUNK_CLASS = "DocumentChunk"

// chunkClassObject builds the schema for the chunk collection. Vectors are
// always supplied explicitly by the embedding client, so no vectorizer
// module is configured.
func chunkClassObject(name string) *models.Class {
	return &models.Class{
		Class: name,
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}},
			{Name: "source", DataType: []string{"text"}},
			{Name: "chunkIndex", DataType: []string{"int"}},
			{Name: "createdAt", DataType: []string{"int"}},
		},
		Vectorizer:      "none",
		VectorIndexType: "hnsw",
	}
}

type WeaviateStore struct {
	client    *weaviate.Client
	className string
}

func NewWeaviateStore(config config.WeaviateStoreConfig) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(config.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(config.Host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if config.APIKey != "" {
		cfg.AuthConfig = auth.ApiKey{
			Value: config.APIKey,
		}
		cfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     config.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	className := config.Class
	if className == "" {
		className = DEFAULT_CHUNK_CLASS
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %v", err)
	}

	schema, err := client.Schema().Getter().Do(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get schema: %v", err)
	}

	hasChunkClass := false
	for _, class := range schema.Classes {
		if class.Class == className {
			hasChunkClass = true
			break
		}
	}
	// Create the chunk class if it doesn't exist
	if !hasChunkClass {
		err = client.Schema().ClassCreator().WithClass(chunkClassObject(className)).Do(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to create %s class: %v", className, err)
		}
	}
	return &WeaviateStore{
		client:    client,
		className: className,
	}, nil
}

func (s *WeaviateStore) ReInit(ctx context.Context) error {
	err := s.client.Schema().ClassDeleter().WithClassName(s.className).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s class: %v", s.className, err)
	}

	err = s.client.Schema().ClassCreator().WithClass(chunkClassObject(s.className)).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create %s class: %v", s.className, err)
	}
	return nil
}

func (s *WeaviateStore) InsertRecord(ctx context.Context, rec *Record, vector []float32) error {
	properties := map[string]interface{}{
		"content":    rec.Content,
		"source":     rec.Source,
		"chunkIndex": rec.ChunkIndex,
		"createdAt":  rec.CreatedAt,
	}

	creator := s.client.Data().Creator().
		WithClassName(s.className).
		WithID(rec.ID).
		WithProperties(properties)

	if vector != nil {
		creator = creator.WithVector(vector)
	}

	_, err := creator.Do(ctx)
	return err
}

func (s *WeaviateStore) SearchNearest(ctx context.Context, vector []float32, limit int) ([]Match, error) {
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "source"},
		{Name: "chunkIndex"},
		{Name: "createdAt"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}, {Name: "id"}}},
	}

	nearVector := s.client.GraphQL().NearVectorArgBuilder().
		WithVector(vector)

	getBuilder := s.client.GraphQL().Get().
		WithClassName(s.className).
		WithFields(fields...).
		WithNearVector(nearVector)
	if limit > 0 {
		getBuilder = getBuilder.WithLimit(limit)
	}

	result, err := getBuilder.Do(ctx)
	if err != nil {
		return nil, err
	}
	if result.Errors != nil {
		return nil, fmt.Errorf("search failed: %v", result.Errors[0].Message)
	}

	return parseMatches(result, s.className)
}

// parseMatches unpacks a GraphQL Get response. Weaviate returns hits in
// ascending distance order already; the order is preserved.
func parseMatches(result *models.GraphQLResponse, className string) ([]Match, error) {
	get, ok := result.Data["Get"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: missing Get")
	}
	data, ok := get[className].([]interface{})
	if !ok {
		return nil, nil
	}

	var matches []Match
	for _, item := range data {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		match := Match{
			Record: Record{
				Content:    asString(obj["content"]),
				Source:     asString(obj["source"]),
				ChunkIndex: int(asFloat(obj["chunkIndex"])),
				CreatedAt:  int64(asFloat(obj["createdAt"])),
			},
		}
		if additional, ok := obj["_additional"].(map[string]interface{}); ok {
			match.ID = asString(additional["id"])
			match.Distance = float32(asFloat(additional["distance"]))
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// Helper functions
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
