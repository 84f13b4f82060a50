package repository

import (
	"context"
	"errors"

	"partnerdash-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const engagementCacheID = "mixmax"

type engagementCacheDocument struct {
	ID                          string `bson:"_id"`
	models.EngagementCacheEntry `bson:",inline"`
}

// EngagementCacheRepository stores the engagement cache entry as a single MongoDB document.
type EngagementCacheRepository struct {
	collection *mongo.Collection
}

func NewEngagementCacheRepository(collection *mongo.Collection) *EngagementCacheRepository {
	return &EngagementCacheRepository{
		collection: collection,
	}
}

func (r *EngagementCacheRepository) Get(ctx context.Context) (*models.EngagementCacheEntry, error) {
	var doc engagementCacheDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": engagementCacheID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.EngagementCacheEntry, nil
}

func (r *EngagementCacheRepository) Put(ctx context.Context, entry models.EngagementCacheEntry) error {
	doc := engagementCacheDocument{ID: engagementCacheID, EngagementCacheEntry: entry}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": engagementCacheID}, doc, options.Replace().SetUpsert(true))
	return err
}
