package main

import (
	"candlecompare/config"
	"candlecompare/internal/collector"
	"candlecompare/logger"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// run comparison pipeline
	if err := collector.Start(cfg, log); err != nil {
		log.Fatal("collector failed", zap.Error(err))
	}

	select {}
}
