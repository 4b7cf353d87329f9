package models

import "time"

// InsightCategory names one strategic insight produced by the enrichment
// pipeline.
type InsightCategory string

const (
	CategoryMarketPositioning InsightCategory = "market_positioning"
	CategoryPriceAssessment   InsightCategory = "price_assessment"
	CategoryRecommendations   InsightCategory = "recommendations"
	CategoryOpportunities     InsightCategory = "opportunities"
	CategoryDataStrategy      InsightCategory = "data_strategy"
)

// Categories returns every insight category, in report order.
func Categories() []InsightCategory {
	return []InsightCategory{
		CategoryMarketPositioning,
		CategoryPriceAssessment,
		CategoryRecommendations,
		CategoryOpportunities,
		CategoryDataStrategy,
	}
}

// EnrichmentResult holds the parsed insight text for every category.
// All category keys are always present; categories the model did not
// answer carry empty strings and a matching warning.
type EnrichmentResult struct {
	Insights    map[InsightCategory]string `json:"insights"`
	Warnings    []string                   `json:"warnings,omitempty"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// NewEnrichmentResult returns a result with every category key present
// and empty.
func NewEnrichmentResult() *EnrichmentResult {
	insights := make(map[InsightCategory]string, len(Categories()))
	for _, c := range Categories() {
		insights[c] = ""
	}
	return &EnrichmentResult{
		Insights:    insights,
		GeneratedAt: time.Now().UTC(),
	}
}

// Populated reports whether every category has non-empty insight text.
func (r *EnrichmentResult) Populated() bool {
	for _, c := range Categories() {
		if r.Insights[c] == "" {
			return false
		}
	}
	return true
}
