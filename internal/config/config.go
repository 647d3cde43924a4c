// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Storage backends
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	// HTTP server
	APIURL           string
	ListenAddress    string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Storage
	StorageBackend string
	DBPath         string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string

	// Tokens
	TokenSecret string
	TokenTTL    time.Duration

	// Reports
	Currency string
	Locale   string

	// Problems found while parsing, reported by Validate
	problems []string
}

// Load reads the configuration. Values from a .env file in the working
// directory are used for variables that are not set in the environment.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		APIURL:           os.Getenv("API_URL"),
		ListenAddress:    getEnv("LISTEN_ADDRESS", ":8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",

		StorageBackend: os.Getenv("STORAGE_BACKEND"),
		DBPath:         getEnv("DB_PATH", "data/smart-budget.db"),
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "smart-budget"),

		TokenSecret: os.Getenv("TOKEN_SECRET"),

		Currency: getEnv("CURRENCY", "INR"),
		Locale:   getEnv("LOCALE", "en-IN"),
	}

	// A database host implies postgres
	if c.StorageBackend == "" {
		c.StorageBackend = BackendSQLite
		if c.DBHost != "" {
			c.StorageBackend = BackendPostgres
		}
	}

	ttl := getEnv("TOKEN_TTL", "168h")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("invalid TOKEN_TTL '%s': %v", ttl, err))
	}
	c.TokenTTL = d

	return c
}

// Validate returns an error listing every problem with the configuration.
func (c *Config) Validate() error {
	problems := slices.Clone(c.problems)

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	}

	backends := []string{BackendSQLite, BackendPostgres, BackendMemory}
	if !slices.Contains(backends, c.StorageBackend) {
		problems = append(problems, fmt.Sprintf("invalid STORAGE_BACKEND '%s': must be one of %v", c.StorageBackend, backends))
	}

	if c.StorageBackend == BackendSQLite && c.DBPath == "" {
		problems = append(problems, "DB_PATH must be set for the sqlite backend")
	}

	if c.StorageBackend == BackendPostgres && c.DBHost == "" {
		problems = append(problems, "DB_HOST must be set for the postgres backend")
	}

	if c.TokenSecret == "" {
		problems = append(problems, "TOKEN_SECRET must be set")
	}

	if c.TokenTTL <= 0 && len(c.problems) == 0 {
		problems = append(problems, fmt.Sprintf("invalid TOKEN_TTL %v: must be positive", c.TokenTTL))
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		problems = append(problems, fmt.Sprintf("invalid CURRENCY '%s': must be an ISO 4217 code", c.Currency))
	}

	if _, err := language.Parse(c.Locale); err != nil {
		problems = append(problems, fmt.Sprintf("invalid LOCALE '%s': %v", c.Locale, err))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be human or json", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API_URL. Call Validate first.
func (c *Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// PostgresDSN returns the connection string for the postgres backend.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
