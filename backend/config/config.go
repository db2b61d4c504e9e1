package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
	ServerPort string
	LogFormat  string

	LeetCodeBackendURL string
	LeetCodeAPIKey     string
	PollInterval       time.Duration

	TimeZone    string
	Location    *time.Location
	DailyTarget int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		DBDriver:           getEnv("DB_DRIVER", DriverPostgres),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "khel_khatm"),
		DBPath:             getEnv("DB_PATH", "tracker.db"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LeetCodeBackendURL: getEnv("LEETCODE_BACKEND_URL", ""),
		LeetCodeAPIKey:     getEnv("LEETCODE_API_KEY", ""),
		TimeZone:           getEnv("TIME_ZONE", "UTC"),
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	cfg.Location, err = time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE %q: %w", cfg.TimeZone, err)
	}

	cfg.PollInterval, err = time.ParseDuration(getEnv("POLL_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
	}

	cfg.DailyTarget, err = strconv.Atoi(getEnv("DAILY_TARGET", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_TARGET: %w", err)
	}
	if cfg.DailyTarget < 1 {
		cfg.DailyTarget = 1
	}

	return cfg, nil
}

// Now returns the current time in the configured zone.
func (c *Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
