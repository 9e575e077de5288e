package collector

import (
	"context"
	"fmt"
	"time"

	"candlecompare/api"
	"candlecompare/config"
	"candlecompare/internal/candle"
	"candlecompare/internal/feed/exchange"
	"candlecompare/internal/feed/index"
	"candlecompare/pkg/indexapi"
	"candlecompare/pkg/streamws"

	"go.uber.org/zap"
)

// Start wires up the comparison pipeline for one asset. It backfills recent
// candles from the indexing service's REST API, connects the two WebSocket
// feeds (exchange trades and index candles), starts the HTTP snapshot API,
// and periodically logs the agreement metrics.
func Start(cfg *config.Config, logger *zap.Logger) error {
	board := candle.NewBoard(cfg.Engine.BucketWidthMs, cfg.Engine.MaxSeriesLength)

	// Backfill source B so the comparison is not empty while the live
	// subscription warms up. Failure here is not fatal; the subscription
	// delivers the same buckets eventually.
	restClient := indexapi.NewClient(cfg.Index.RESTBaseURL, cfg.Index.Timeout,
		cfg.Engine.BucketWidthMs, logger)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Index.Timeout)
	end := time.Now()
	start := end.Add(-cfg.Index.Backfill)
	backfill, err := restClient.GetCandles(ctx, cfg.Symbol, start, end)
	cancel()
	if err != nil {
		logger.Warn("failed to backfill candles from index service",
			zap.String("symbol", cfg.Symbol), zap.Error(err))
	} else {
		board.Merger().Ingest(backfill)
		logger.Info("backfilled index candles",
			zap.String("symbol", cfg.Symbol), zap.Int("count", len(backfill)))
	}

	// Source A: exchange public trade stream
	tradeTopic := fmt.Sprintf("publicTrade.%s", cfg.Symbol)
	exchangeWS := streamws.NewClient(cfg.Exchange.WSURL, []string{tradeTopic}, logger)
	exchangeWS.SetMessageHandler(exchange.MakeMessageHandler(logger, board.Aggregator()))

	// Source B: indexing-service candle subscription
	candleTopic := fmt.Sprintf("candle.%s.%s", intervalLabel(cfg.Engine.BucketWidthMs), cfg.Symbol)
	indexWS := streamws.NewClient(cfg.Index.WSURL, []string{candleTopic}, logger)
	indexWS.SetMessageHandler(index.MakeMessageHandler(logger, board.Merger(), cfg.Engine.BucketWidthMs))

	if err := exchangeWS.Connect(); err != nil {
		return fmt.Errorf("failed to connect exchange feed: %w", err)
	}
	if err := indexWS.Connect(); err != nil {
		return fmt.Errorf("failed to connect index feed: %w", err)
	}
	go exchangeWS.Listen()
	go indexWS.Listen()

	// Periodically log the agreement metrics for visibility
	go func() {
		for {
			m := board.Metrics()
			logger.Info("series agreement",
				zap.Int("exchange_candles", len(board.ExchangeSeries())),
				zap.Int("index_candles", len(board.IndexSeries())),
				zap.Float64("matched_fraction", m.MatchedFraction),
				zap.Float64("mean_deviation_bps", m.MeanPriceDeviationBps),
				zap.Int64("dropped_late_trades", board.Aggregator().DroppedLate()))

			time.Sleep(5 * time.Second)
		}
	}()

	// HTTP snapshot API for the dashboard front-end
	handler := api.NewHandler(board, logger)
	go func() {
		if err := handler.StartServer(cfg.Server.Port); err != nil {
			logger.Fatal("api server failed", zap.Error(err))
		}
	}()

	return nil
}

// intervalLabel renders a bucket width as a subscription interval label,
// e.g. 60000 -> "1m".
func intervalLabel(bucketWidthMs int64) string {
	if bucketWidthMs%60000 == 0 {
		return fmt.Sprintf("%dm", bucketWidthMs/60000)
	}
	return fmt.Sprintf("%ds", bucketWidthMs/1000)
}
