package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
)

const (
	DriverMongo    = "mongo"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port        string
	GinMode     string
	LogConfig   string
	DBDriver    string
	MongoURI    string
	MongoDB     string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SQLitePath  string
	JWTSecret   string
	TokenTTL    time.Duration
	RequireAuth bool
	CORSOrigins []string
}

// Load reads the configuration from the environment. A missing JWT_SECRET is
// an error: the server must not start without a signing key.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "10000"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogConfig:   getEnv("LOG_CONFIG", "<root>=INFO"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverMongo)),
		MongoURI:    getEnv("MONGO_URI", ""),
		MongoDB:     getEnv("MONGO_DB", "todo_tracker"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "taskuser"),
		DBPassword:  getEnv("DB_PASSWORD", "taskpassword"),
		DBName:      getEnv("DB_NAME", "todo_tracker"),
		SQLitePath:  getEnv("SQLITE_PATH", "todo_tracker.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,https://todo-tracker-app-ten.vercel.app")),
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "0s")); err != nil {
		return nil, errors.NotValidf("TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}
	if cfg.RequireAuth, err = strconv.ParseBool(getEnv("REQUIRE_AUTH", "false")); err != nil {
		return nil, errors.NotValidf("REQUIRE_AUTH %q", os.Getenv("REQUIRE_AUTH"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.NotValidf("missing JWT_SECRET")
	}
	if c.TokenTTL < 0 {
		return errors.NotValidf("negative TOKEN_TTL")
	}

	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.NotValidf("missing MONGO_URI")
		}
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return errors.NotValidf("DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
