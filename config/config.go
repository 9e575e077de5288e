package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Symbol   string         `mapstructure:"symbol"`
	Exchange ExchangeConfig `mapstructure:"exchange"`
	Index    IndexConfig    `mapstructure:"index"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// ExchangeConfig configures the direct exchange trade feed (source A).
type ExchangeConfig struct {
	WSURL   string        `mapstructure:"ws_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// IndexConfig configures the indexing-service candle feed (source B):
// live subscription plus REST backfill at session start.
type IndexConfig struct {
	WSURL       string        `mapstructure:"ws_url"`
	RESTBaseURL string        `mapstructure:"rest_base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Backfill    time.Duration `mapstructure:"backfill"` // how far back to backfill candles at startup
}

// EngineConfig configures the candle engine. Both values are fixed for a
// session and never change mid-stream.
type EngineConfig struct {
	BucketWidthMs   int64 `mapstructure:"bucket_width_ms"`
	MaxSeriesLength int   `mapstructure:"max_series_length"`
}

// ServerConfig configures the HTTP snapshot API.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		v.AddConfigPath(filepath.Join(pwd, "../../config"))
	} else {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	// Engine defaults: 60s buckets, 100 retained candles per series
	v.SetDefault("engine.bucket_width_ms", 60000)
	v.SetDefault("engine.max_series_length", 100)

	// Support environment variables with dot notation (e.g., EXCHANGE_WS_URL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
