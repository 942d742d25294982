package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBDriver   string
	DBSource   string
	Port       string
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	StaffUsername string
	StaffPassword string
	SeedDishes    bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, using environment only")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "santodomingo.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
		StaffUsername: getEnv("STAFF_USERNAME", ""),
		StaffPassword: getEnv("STAFF_PASSWORD", ""),
		SeedDishes:    getEnv("SEED_DISHES", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
