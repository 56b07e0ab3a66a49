package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Import engine tuning. The span and night thresholds are legacy
	// heuristics, configurable rather than hard-coded.
	ImportMaxRows            int
	ImportSubBatchSize       int
	ImportTxTimeout          time.Duration
	ImportMaxStaySpanDays    int
	ImportMaxEstimatedNights int
	ImportBreakfastService   string

	// Rate limit applied to the import endpoints (ulule/limiter format).
	ImportRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("IMPORT_MAX_ROWS", 1000)
	viper.SetDefault("IMPORT_SUB_BATCH_SIZE", 50)
	viper.SetDefault("IMPORT_TX_TIMEOUT", "5m")
	viper.SetDefault("IMPORT_MAX_STAY_SPAN_DAYS", 365)
	viper.SetDefault("IMPORT_MAX_ESTIMATED_NIGHTS", 30)
	viper.SetDefault("IMPORT_BREAKFAST_SERVICE", "Desayuno")
	viper.SetDefault("IMPORT_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ImportMaxRows = viper.GetInt("IMPORT_MAX_ROWS")
	cfg.ImportSubBatchSize = viper.GetInt("IMPORT_SUB_BATCH_SIZE")
	cfg.ImportMaxStaySpanDays = viper.GetInt("IMPORT_MAX_STAY_SPAN_DAYS")
	cfg.ImportMaxEstimatedNights = viper.GetInt("IMPORT_MAX_ESTIMATED_NIGHTS")
	cfg.ImportBreakfastService = viper.GetString("IMPORT_BREAKFAST_SERVICE")
	cfg.ImportRateLimit = viper.GetString("IMPORT_RATE_LIMIT")

	txTimeoutStr := viper.GetString("IMPORT_TX_TIMEOUT")
	txTimeout, err := time.ParseDuration(txTimeoutStr)
	if err != nil {
		txTimeout = 5 * time.Minute
		if txTimeoutStr != "" {
			log.Printf("Warning: Invalid value for IMPORT_TX_TIMEOUT ('%s'). Defaulting to %s.\n", txTimeoutStr, txTimeout)
		}
	}
	cfg.ImportTxTimeout = txTimeout

	return cfg, nil
}
