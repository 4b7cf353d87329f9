package router

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartecommerce/insight-api/pkg/ai"
	"github.com/smartecommerce/insight-api/pkg/global"
	"github.com/smartecommerce/insight-api/pkg/models"
	"github.com/smartecommerce/insight-api/pkg/mongo"
	"github.com/smartecommerce/insight-api/pkg/redis"
)

var enricher *ai.Enricher

// InitServices wires the enrichment pipeline into the handlers. Called
// once from main after the LLM client is constructed.
func InitServices(e *ai.Enricher) {
	enricher = e
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"status":          "OK",
		"llm_ready":       enricher != nil,
		"cache_enabled":   global.RedisEnabled(),
		"history_enabled": global.MongoEnabled(),
	}))
}

// EnrichRequest is the body of POST /api/enrich.
type EnrichRequest struct {
	Product models.ProductRecord `json:"product"`
	Store   models.StoreRecord   `json:"store"`
}

// EnrichProduct runs the enrichment pipeline for one product/store pair,
// serving from the Redis cache when an identical request was answered
// recently.
func EnrichProduct(c *gin.Context) {
	if enricher == nil {
		c.JSON(http.StatusServiceUnavailable, global.ErrorResponse("Enrichment service is not configured", nil))
		return
	}

	var req EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "invalid_json"},
		}))
		return
	}

	if validationErrors := validateEnrichRequest(&req); len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid enrichment request", validationErrors))
		return
	}

	ctx := c.Request.Context()

	cacheKey := redis.EnrichmentCacheKey(req.Product, req.Store)
	if global.RedisEnabled() {
		if report, err := redis.GetEnrichmentFromCache(ctx, cacheKey); err == nil {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, global.SuccessResponse(report))
			return
		}
	}

	result, err := enricher.Enrich(ctx, req.Product, req.Store)
	if err != nil {
		status, message := mapServiceError(err)
		c.JSON(status, global.ErrorResponse(message, nil))
		return
	}

	report := ai.NewReport(req.Product, req.Store, result)

	if global.MongoEnabled() {
		id, err := mongo.SaveReport(report)
		if err != nil {
			log.Printf("Failed to save insight report: %v", err)
		} else {
			report.ID = id
		}
	}

	if global.RedisEnabled() {
		if err := redis.CacheEnrichment(ctx, cacheKey, report); err != nil {
			log.Printf("Failed to cache enrichment report: %v", err)
		}
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(report))
}

func validateEnrichRequest(req *EnrichRequest) []global.ValidationError {
	var validationErrors []global.ValidationError

	if strings.TrimSpace(req.Product.Title) == "" {
		validationErrors = append(validationErrors, global.ValidationError{
			Field: "product.title", Message: "product title is required", Code: "required",
		})
	}
	if strings.TrimSpace(req.Store.Name) == "" && strings.TrimSpace(req.Store.Domain) == "" {
		validationErrors = append(validationErrors, global.ValidationError{
			Field: "store", Message: "store name or domain is required", Code: "required",
		})
	}

	return validationErrors
}

// mapServiceError translates pipeline errors onto HTTP status codes:
// configuration problems and transient upstream failures are 503, hard
// upstream failures are 502.
func mapServiceError(err error) (int, string) {
	if errors.Is(err, ai.ErrMissingAPIKey) {
		return http.StatusServiceUnavailable, "Enrichment service is not configured"
	}

	var svcErr *ai.ServiceError
	if errors.As(err, &svcErr) {
		if svcErr.Retryable {
			return http.StatusServiceUnavailable, "LLM service temporarily unavailable, retry later"
		}
		return http.StatusBadGateway, "LLM service request failed"
	}

	return http.StatusInternalServerError, "Enrichment failed"
}

// GetRecentInsights lists stored reports, newest first.
func GetRecentInsights(c *gin.Context) {
	if !global.MongoEnabled() {
		c.JSON(http.StatusServiceUnavailable, global.ErrorResponse("Insight history is not configured", nil))
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid limit", []global.ValidationError{
				{Field: "limit", Message: "limit must be between 1 and 100", Code: "invalid_range"},
			}))
			return
		}
		limit = parsed
	}

	reports, err := mongo.GetRecentReports(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get insight reports", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(reports))
}

// GetInsightByID fetches one stored report.
func GetInsightByID(c *gin.Context) {
	if !global.MongoEnabled() {
		c.JSON(http.StatusServiceUnavailable, global.ErrorResponse("Insight history is not configured", nil))
		return
	}

	report, err := mongo.GetReportByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Insight report not found", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(report))
}

// GetInsightStats aggregates stored reports per store domain.
func GetInsightStats(c *gin.Context) {
	if !global.MongoEnabled() {
		c.JSON(http.StatusServiceUnavailable, global.ErrorResponse("Insight history is not configured", nil))
		return
	}

	stats, err := mongo.GetInsightStatsByStore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get insight stats", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(stats))
}
