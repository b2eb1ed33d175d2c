package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Renderer  RendererConfig
	Postal    PostalConfig
	Company   CompanyConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type RendererConfig struct {
	Type    string // "http" or "none"
	BaseURL string
}

type PostalConfig struct {
	BaseURL  string
	CacheTTL time.Duration
}

// CompanyConfig identifies the selling business on generated documents.
type CompanyConfig struct {
	Name      string
	LegalName string
	TaxID     string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "sales-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("RENDERER_TYPE", "none")
	viper.SetDefault("RENDERER_BASE_URL", "")
	viper.SetDefault("POSTAL_BASE_URL", "http://localhost:9500")
	viper.SetDefault("POSTAL_CACHE_TTL_MINUTES", 1440)
	viper.SetDefault("COMPANY_NAME", "Octosólido")
	viper.SetDefault("COMPANY_LEGAL_NAME", "Octosólido - Mobiliário e Decoração, Lda.")
	viper.SetDefault("COMPANY_TAX_ID", "500000000")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Renderer: RendererConfig{
			Type:    viper.GetString("RENDERER_TYPE"),
			BaseURL: viper.GetString("RENDERER_BASE_URL"),
		},
		Postal: PostalConfig{
			BaseURL:  viper.GetString("POSTAL_BASE_URL"),
			CacheTTL: time.Duration(viper.GetInt("POSTAL_CACHE_TTL_MINUTES")) * time.Minute,
		},
		Company: CompanyConfig{
			Name:      viper.GetString("COMPANY_NAME"),
			LegalName: viper.GetString("COMPANY_LEGAL_NAME"),
			TaxID:     viper.GetString("COMPANY_TAX_ID"),
		},
	}
}
