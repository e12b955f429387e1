package config

import (
	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	CatalogURL   string `mapstructure:"CATALOG_URL"`
	CacheTTL     int    `mapstructure:"CACHE_TTL"`      // seconds
	FetchTimeout int    `mapstructure:"FETCH_TIMEOUT"`  // seconds
	RenderJS     bool   `mapstructure:"RENDER_JS"`      // fetch via headless Chrome
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"` // empty disables AI ranking
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	RedisAddr    string `mapstructure:"REDIS_ADDR"` // empty disables snapshot persistence
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present
	// This allows configuration purely through environment variables in production
	_ = viper.ReadInConfig()

	// Set default values
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("CATALOG_URL", "https://www.shl.com/solutions/products/product-catalog/")
	viper.SetDefault("CACHE_TTL", 86400)
	viper.SetDefault("FETCH_TIMEOUT", 10)
	viper.SetDefault("RENDER_JS", false)
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("REDIS_ADDR", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
