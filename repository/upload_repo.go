package repository

import (
	"context"
	"log"

	"github.com/openkb/docsearch-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UploadRepo records which documents have been ingested and the vector
// record ids each one produced. Vectors and chunk text live only in the
// vector store.
type UploadRepo interface {
	CreateUpload(ctx context.Context, record *types.UploadRecord) error
	ListUploads(ctx context.Context, limit, offset int64) ([]types.UploadRecord, error)
}

type uploadRepo struct {
	collection *mongo.Collection
}

func NewUploadRepo(db *mongo.Database) UploadRepo {
	// check if collection does not exist, create one
	collectionNames, err := db.ListCollectionNames(context.Background(), bson.D{})
	if err != nil {
		panic(err)
	}
	collectionExists := false
	for _, name := range collectionNames {
		if name == "uploads" {
			collectionExists = true
			break
		}
	}
	collection := db.Collection("uploads")
	if !collectionExists {
		indexes := []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "created_at", Value: -1},
				},
			},
			{
				Keys: bson.D{
					{Key: "original_name", Value: 1},
				},
			},
		}

		_, err = collection.Indexes().CreateMany(context.Background(), indexes)
		if err != nil {
			log.Printf("Error creating indexes: %v", err)
			return nil
		}
	}

	return &uploadRepo{
		collection: collection,
	}
}

func (r *uploadRepo) CreateUpload(ctx context.Context, record *types.UploadRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *uploadRepo) ListUploads(ctx context.Context, limit, offset int64) ([]types.UploadRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []types.UploadRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
