package ai

import (
	"fmt"

	"github.com/smartecommerce/insight-api/pkg/models"
)

// EnrichmentSystemPrompt frames the model as an e-commerce analyst and
// pins the expected output structure.
const EnrichmentSystemPrompt = `You are a professional e-commerce analyst specializing in product strategy.
Analyze the product data you are given and produce a strategic action plan.
Write your answer under the exact section headers requested, one section per
insight category, as actionable bullet points. Keep the whole answer under
300 words. Do not add sections of your own.`

// section ties an insight category to the header the prompt asks for and
// the header variants the parser accepts. The upstream service does not
// guarantee exact wording, so matching stays deliberately loose.
type section struct {
	category models.InsightCategory
	header   string
	aliases  []string
}

var sections = []section{
	{
		category: models.CategoryMarketPositioning,
		header:   "MARKET POSITIONING",
		aliases:  []string{"MARKET POSITION", "POSITIONING"},
	},
	{
		category: models.CategoryPriceAssessment,
		header:   "PRICE ASSESSMENT",
		aliases:  []string{"PRICING", "PRICE COMPETITIVENESS", "PRICE ANALYSIS"},
	},
	{
		category: models.CategoryRecommendations,
		header:   "RECOMMENDATIONS",
		aliases:  []string{"PRODUCT OPTIMIZATION", "OPTIMIZATION"},
	},
	{
		category: models.CategoryOpportunities,
		header:   "BUSINESS OPPORTUNITIES",
		aliases:  []string{"OPPORTUNITIES", "GROWTH OPPORTUNITIES"},
	},
	{
		category: models.CategoryDataStrategy,
		header:   "DATA STRATEGY",
		aliases:  []string{"DATA UTILIZATION PLAN", "DATA UTILIZATION", "DATA PLAN"},
	},
}

// BuildEnrichmentPrompt renders the user prompt for one product/store
// pair. Missing fields appear as the placeholder text rather than being
// dropped, keeping the prompt shape deterministic.
func BuildEnrichmentPrompt(product models.ProductRecord, store models.StoreRecord) string {
	prompt := fmt.Sprintf(`Analyze this e-commerce product and create a strategic action plan:

Product: %s
Price: %s
Category: %s
Vendor: %s
Available: %s
Variants: %s
Images: %s
Tags: %s

Store: %s
Store domain: %s

Note: stock levels are not tracked - focus on the data points above.

Provide a strategic action plan with these sections:

**%s:**
- Price competitiveness for this category
- Brand positioning opportunities

**%s:**
- How the price compares to the likely market range
- Pricing tactics worth testing

**%s:**
- Variant strategy effectiveness
- Listing and image presentation improvements

**%s:**
- Revenue optimization tactics
- Market expansion and customer acquisition ideas

**%s:**
- How to leverage the scraped product data
- Competitive intelligence and trend analysis possibilities

Format each section as actionable bullet points. Max 300 words.`,
		product.DisplayTitle(),
		product.DisplayPrice(),
		product.DisplayType(),
		product.DisplayVendor(),
		product.DisplayAvailability(),
		product.DisplayVariantCount(),
		product.DisplayImageCount(),
		product.DisplayTags(),
		store.DisplayName(),
		store.DisplayDomain(),
		sections[0].header,
		sections[1].header,
		sections[2].header,
		sections[3].header,
		sections[4].header,
	)

	return prompt
}
