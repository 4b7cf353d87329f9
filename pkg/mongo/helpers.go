package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/smartecommerce/insight-api/pkg/ai"
	"github.com/smartecommerce/insight-api/pkg/global"
)

const insightsCollection = "insights"

// InsightDocument is the stored form of one enrichment report.
type InsightDocument struct {
	ID           bson.ObjectID     `bson:"_id,omitempty" json:"id"`
	ProductTitle string            `bson:"product_title" json:"product_title"`
	StoreDomain  string            `bson:"store_domain" json:"store_domain"`
	Insights     map[string]string `bson:"insights" json:"insights"`
	Warnings     []string          `bson:"warnings,omitempty" json:"warnings,omitempty"`
	GeneratedAt  time.Time         `bson:"generated_at" json:"generated_at"`
}

// SaveReport appends a finished enrichment report to the history
// collection and returns its hex id.
func SaveReport(report *ai.EnrichmentReport) (string, error) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	collection := GetCollection(insightsCollection)

	insights := make(map[string]string, len(report.Result.Insights))
	for category, text := range report.Result.Insights {
		insights[string(category)] = text
	}

	doc := InsightDocument{
		ID:           bson.NewObjectID(),
		ProductTitle: report.ProductTitle,
		StoreDomain:  report.StoreDomain,
		Insights:     insights,
		Warnings:     report.Result.Warnings,
		GeneratedAt:  report.GeneratedAt,
	}

	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to save insight report: %w", err)
	}

	return doc.ID.Hex(), nil
}

// GetRecentReports returns the latest stored reports, newest first.
func GetRecentReports(limit int) ([]InsightDocument, error) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	collection := GetCollection(insightsCollection)

	if limit <= 0 || limit > 100 {
		limit = 10
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []InsightDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// GetReportByID looks up a single stored report by its hex id.
func GetReportByID(id string) (*InsightDocument, error) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	collection := GetCollection(insightsCollection)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid insight id %q: %w", id, err)
	}

	var doc InsightDocument
	if err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
