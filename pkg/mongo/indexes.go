package mongo

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/smartecommerce/insight-api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Newest-first listing of stored insight reports
	{
		CollectionName: insightsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "generated_at", Value: -1}},
			Options: options.Index().SetName("idx_generated_at"),
		},
	},
	// Per-store history queries sorted by recency
	{
		CollectionName: insightsCollection,
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "store_domain", Value: 1},
				{Key: "generated_at", Value: -1},
			},
			Options: options.Index().SetName("idx_store_generated_at"),
		},
	},
}

// EnsureIndexes creates every required index; CreateOne is a no-op for
// indexes that already exist.
func EnsureIndexes(ctx context.Context) error {
	for _, cfg := range requiredIndexes {
		collection := GetCollection(cfg.CollectionName)
		if _, err := collection.Indexes().CreateOne(ctx, cfg.IndexModel); err != nil {
			return err
		}
	}
	return nil
}

func EnsureIndexesOnStartup() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	if err := EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	log.Println("MongoDB indexes ensured")
}
