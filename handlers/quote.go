package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"voyago/models"
	"voyago/services/pricing"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the public pricing endpoint.
type QuoteHandler struct {
	Quotes pricing.QuoteService
}

// QuoteJourneyHandler handles POST /api/quotes. It prices the journey across
// every active vehicle class and returns one quote per class. Responses are
// cached briefly in Redis keyed on the request payload, so repeated widget
// lookups for the same journey skip the tariff walk.
func (h *QuoteHandler) QuoteJourneyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid quote request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx := context.Background()
	cacheKey, cacheable := quoteCacheKey(req)
	if cacheable {
		if cached, err := utils.GetCacheClient().Get(ctx, cacheKey).Result(); err == nil {
			var quotes []models.Quote
			if json.Unmarshal([]byte(cached), &quotes) == nil {
				c.JSON(http.StatusOK, gin.H{"quotes": quotes, "cached": true})
				return
			}
		}
	}

	quotes, err := h.Quotes.Quote(req)
	if err != nil {
		logger.Error("Quote computation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cacheable {
		if data, err := json.Marshal(quotes); err == nil {
			if err := utils.GetCacheClient().Set(ctx, cacheKey, data, utils.QuoteCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache quote response", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

// quoteCacheKey derives a deterministic cache key from the request payload.
// Time-sensitive requests are not cacheable: a pickupAt near a surcharge
// window boundary must always be priced fresh.
func quoteCacheKey(req models.QuoteRequest) (string, bool) {
	if req.PickupAt != nil {
		return "", false
	}
	data, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	return utils.QuoteCachePrefix + hex.EncodeToString(sum[:]), true
}
