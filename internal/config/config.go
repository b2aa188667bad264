package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	supabaseConnStr := os.Getenv("SUPABASE_CONNECTION_STRING")
	statsToken := os.Getenv("STATS_API_TOKEN")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")
	siteHost := os.Getenv("SITE_HOST")

	if statsToken == "" {
		return nil, fmt.Errorf("STATS_API_TOKEN environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:               port,
		Environment:        environment,
		SupabaseConnString: supabaseConnStr,
		StatsToken:         statsToken,
		StatsDebug:         os.Getenv("STATS_API_DEBUG") == "true",
		SiteHost:           siteHost,
		EmailJSPublicKey:   os.Getenv("EMAILJS_PUBLIC_KEY"),
		EmailJSServiceID:   os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID:  os.Getenv("EMAILJS_TEMPLATE_ID"),
	}, nil
}
