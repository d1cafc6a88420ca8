package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultKeywords is the trigger word list used when KEYWORDS is unset.
const DefaultKeywords = "sales,loan,sell,sale,finance,buy,offer"

type Config struct {
	Addr            string
	RedisURL        string
	RedisDB         int
	FCMCredentials  string
	FCMProjectID    string
	Keywords        []string
	ShutdownTimeout time.Duration
}

func Load() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	shutdownSecs, _ := strconv.Atoi(getEnv("SHUTDOWN_TIMEOUT_SECONDS", "5"))

	return &Config{
		Addr:            getEnv("LISTEN_ADDR", ":8080"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisDB:         redisDB,
		FCMCredentials:  getEnv("FCM_CREDENTIALS_FILE", ""),
		FCMProjectID:    getEnv("FCM_PROJECT_ID", ""),
		Keywords:        splitList(getEnv("KEYWORDS", DefaultKeywords)),
		ShutdownTimeout: time.Duration(shutdownSecs) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
