package api

import (
	"strconv"

	"candlecompare/internal/candle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Board is the read-only snapshot contract the HTTP layer serves. Every
// accessor returns the latest state without side effects and is callable at
// any time.
type Board interface {
	ExchangeSeries() []candle.Candle
	IndexSeries() []candle.Candle
	Metrics() candle.Metrics
}

// Handler serves series and metrics snapshots for the dashboard front-end.
type Handler struct {
	board  Board
	logger *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(board Board, logger *zap.Logger) *Handler {
	return &Handler{
		board:  board,
		logger: logger,
	}
}

// StartServer starts the HTTP server on the given port.
func (h *Handler) StartServer(port int) error {
	router := h.Routes()
	h.logger.Info("snapshot api listening", zap.Int("port", port))
	return router.Run(":" + strconv.Itoa(port))
}

// Routes configures all API routes.
func (h *Handler) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/series/exchange", h.GetExchangeSeries)
	router.GET("/series/index", h.GetIndexSeries)
	router.GET("/metrics", h.GetMetrics)
	router.GET("/health", h.HealthCheck)

	return router
}
