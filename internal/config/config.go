package config

import (
	"os"
	"strings"
)

type Config struct {
	Port           string
	DataFile       string
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		DataFile:       getEnv("DATA_FILE", "krafty-data.json"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
