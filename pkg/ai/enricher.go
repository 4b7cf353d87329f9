package ai

import (
	"context"
	"time"

	"github.com/smartecommerce/insight-api/pkg/models"
)

// Completer is the completion surface the enricher depends on. Tests
// substitute a deterministic fake; production wires *Client.
type Completer interface {
	Complete(ctx context.Context, systemMessage, userMessage string) (string, error)
}

// Enricher runs the enrichment pipeline: build prompt, invoke the model,
// parse the sectioned response. One product per call, no state kept
// between calls.
type Enricher struct {
	llm Completer
}

func NewEnricher(llm Completer) *Enricher {
	return &Enricher{llm: llm}
}

// Enrich produces strategic insights for one product/store pair. The
// pipeline is strictly linear; an invocation failure aborts the call with
// the classified service error, while parse issues degrade to warnings on
// the result.
func (e *Enricher) Enrich(ctx context.Context, product models.ProductRecord, store models.StoreRecord) (*models.EnrichmentResult, error) {
	prompt := BuildEnrichmentPrompt(product, store)

	completion, err := e.llm.Complete(ctx, EnrichmentSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return ParseInsights(completion), nil
}

// EnrichmentReport packages a result with the identifying context the HTTP
// layer and the history store both need.
type EnrichmentReport struct {
	ID           string                   `json:"id,omitempty"`
	ProductTitle string                   `json:"product_title"`
	StoreDomain  string                   `json:"store_domain"`
	Result       *models.EnrichmentResult `json:"result"`
	GeneratedAt  time.Time                `json:"generated_at"`
}

// NewReport builds the report envelope for a finished enrichment.
func NewReport(product models.ProductRecord, store models.StoreRecord, result *models.EnrichmentResult) *EnrichmentReport {
	return &EnrichmentReport{
		ProductTitle: product.DisplayTitle(),
		StoreDomain:  store.DisplayDomain(),
		Result:       result,
		GeneratedAt:  result.GeneratedAt,
	}
}
