package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type StoreInsightStats struct {
	StoreDomain  string    `json:"store_domain" bson:"_id"`
	ReportCount  int       `json:"report_count" bson:"count"`
	WarningCount int       `json:"warning_count" bson:"warning_count"`
	LastReportAt time.Time `json:"last_report_at" bson:"last_report_at"`
}

type InsightStatsResult struct {
	Stores       []StoreInsightStats `json:"stores"`
	TotalReports int                 `json:"total_reports"`
}

// GetInsightStatsByStore aggregates the stored reports per store domain:
// how many enrichments ran, how many carried parser warnings, and when
// the last one happened.
func GetInsightStatsByStore(ctx context.Context) (*InsightStatsResult, error) {
	collection := GetCollection(insightsCollection)

	pipeline := bson.A{
		bson.D{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$store_domain"},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "warning_count", Value: bson.D{
					{Key: "$sum", Value: bson.D{
						{Key: "$size", Value: bson.D{
							{Key: "$ifNull", Value: bson.A{"$warnings", bson.A{}}},
						}},
					}},
				}},
				{Key: "last_report_at", Value: bson.D{{Key: "$max", Value: "$generated_at"}}},
			}},
		},
		bson.D{
			{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stores []StoreInsightStats
	if err := cursor.All(ctx, &stores); err != nil {
		return nil, err
	}

	totalReports := 0
	for _, store := range stores {
		totalReports += store.ReportCount
	}

	return &InsightStatsResult{
		Stores:       stores,
		TotalReports: totalReports,
	}, nil
}
