package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetExchangeSeries handles GET /series/exchange requests. It returns the
// candle series aggregated from raw exchange trades (source A).
func (h *Handler) GetExchangeSeries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"candles": h.board.ExchangeSeries()})
}

// GetIndexSeries handles GET /series/index requests. It returns the candle
// series merged from the indexing-service subscription (source B).
func (h *Handler) GetIndexSeries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"candles": h.board.IndexSeries()})
}

// GetMetrics handles GET /metrics requests. Metrics are recomputed from the
// current snapshots on every call.
func (h *Handler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Metrics())
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   "candlecompare",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
