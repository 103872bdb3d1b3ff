package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

type Config struct {
	CatalogURL    string
	WebURL        string
	HTTPTimeout   time.Duration
	CacheTTL      time.Duration
	DuplicateDays weekgrid.DuplicatePolicy
	MongoURI      string
	DBName        string
	APIKey        string
	Port          string
}

const (
	DefaultCatalogURL = "http://www.sfu.ca/bin/wcm/course-outlines"
	DefaultWebURL     = "http://www.sfu.ca/outlines.html"
)

// LoadEnv reads a .env file when there is one. A missing file is fine.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		CatalogURL: getenv("OUTLINES_CATALOG_URL", DefaultCatalogURL),
		WebURL:     getenv("OUTLINES_WEB_URL", DefaultWebURL),
		MongoURI:   getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getenv("DB_NAME", "outlines"),
		APIKey:     getenv("API_KEY", "SECRET123"),
		Port:       getenv("PORT", "8080"),
	}

	var err error
	if cfg.HTTPTimeout, err = duration("OUTLINES_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = duration("OUTLINES_CACHE_TTL", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.DuplicateDays, err = weekgrid.ParseDuplicatePolicy(os.Getenv("OUTLINES_DUPLICATE_DAYS")); err != nil {
		return Config{}, fmt.Errorf("OUTLINES_DUPLICATE_DAYS: %w", err)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", key, v)
	}
	return d, nil
}
