package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	defaultPort   = "8000"
	defaultEnv    = "development"
	defaultDBName = "store"
)

type Config struct {
	DatabaseURL       string
	DatabaseName      string
	DBDriver          string
	AppPort           string
	AppEnv            string
	CORSAllowOrigins  []string
	TrustedProxies    []string
	InternalSecretKey string
}

// LoadConfig reads .env (if present) and the process environment.
// A missing DATABASE_URL is not fatal: the server starts with the
// persistence gateway marked unavailable.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DatabaseName:      os.Getenv("DATABASE_NAME"),
		DBDriver:          strings.ToLower(os.Getenv("DB_DRIVER")),
		AppPort:           os.Getenv("PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		CORSAllowOrigins:  splitList(os.Getenv("CORS_ALLOW_ORIGINS")),
		TrustedProxies:    splitList(os.Getenv("TRUSTED_PROXIES")),
		InternalSecretKey: os.Getenv("INTERNAL_SECRET_KEY"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverMongo
	}
	if cfg.AppPort == "" {
		cfg.AppPort = defaultPort
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultEnv
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{"*"}
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = databaseNameFromURL(cfg.DatabaseURL)
	}

	return cfg
}

// databaseNameFromURL takes the path segment of a mongodb:// URL,
// e.g. mongodb://host:27017/shop -> "shop".
func databaseNameFromURL(raw string) string {
	if raw == "" {
		return defaultDBName
	}
	u, err := url.Parse(raw)
	if err != nil {
		return defaultDBName
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultDBName
	}
	return name
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
