package redis

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/smartecommerce/insight-api/pkg/ai"
	"github.com/smartecommerce/insight-api/pkg/models"
)

const enrichmentTTL = 24 * time.Hour

// EnrichmentCacheKey fingerprints a product/store pair. Identical inputs
// map to the same key, so a repeat request within the TTL is served from
// cache instead of burning another LLM call.
func EnrichmentCacheKey(product models.ProductRecord, store models.StoreRecord) string {
	payload, _ := json.Marshal(struct {
		Product models.ProductRecord `json:"product"`
		Store   models.StoreRecord   `json:"store"`
	}{product, store})

	return fmt.Sprintf("enrichment:%x", sha256.Sum256(payload))
}

// CacheEnrichment stores a finished report under its fingerprint key and
// tracks it in the recent-enrichments list.
func CacheEnrichment(ctx context.Context, key string, report *ai.EnrichmentReport) error {
	client := RedisClient()
	defer client.Close()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal enrichment report: %w", err)
	}

	pipe := client.TxPipeline()

	pipe.Set(ctx, key, reportJSON, enrichmentTTL)

	pipe.LPush(ctx, "enrichments:recent", key)
	// Keep only the 100 most recent enrichments
	pipe.LTrim(ctx, "enrichments:recent", 0, 99)
	pipe.Expire(ctx, "enrichments:recent", enrichmentTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute Redis pipeline for enrichment: %w", err)
	}

	return nil
}

// GetEnrichmentFromCache fetches a cached report by fingerprint key.
func GetEnrichmentFromCache(ctx context.Context, key string) (*ai.EnrichmentReport, error) {
	client := RedisClient()
	defer client.Close()

	reportJSON, err := client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var report ai.EnrichmentReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enrichment report: %w", err)
	}

	return &report, nil
}
