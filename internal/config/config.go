package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration for the website server.
type Config struct {
	Addr         string `env:"SITE_ADDR" envDefault:":8080"`
	APIURL       string `env:"SITE_API_URL" envDefault:"http://localhost:5000/api"`
	CookieSecure bool   `env:"SITE_COOKIE_SECURE" envDefault:"false"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DBDriver     string `env:"SITE_DB_DRIVER" envDefault:"pgx"`
	CatalogLimit int    `env:"SITE_CATALOG_LIMIT" envDefault:"100"`
	BodyLimit    int    `env:"SITE_BODY_LIMIT" envDefault:"33554432"`
	StaticDir    string `env:"SITE_STATIC_DIR" envDefault:"./public"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		return Config{}, errors.New("SITE_API_URL is empty")
	}
	if cfg.CatalogLimit <= 0 {
		cfg.CatalogLimit = 100
	}
	return cfg, nil
}
