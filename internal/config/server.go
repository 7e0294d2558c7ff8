package config

import (
	"os"
	"strconv"
	"time"
)

type Server struct {
	Port         string
	SettingsFile string
	LogLevel     string
	LogFormat    string
	Timezone     string

	SessionStore string
	RedisHost    string
	RedisPort    string
	RedisPass    string
	RedisDB      int
	SessionTTL   time.Duration

	SerpAPIBaseURL    string
	OpenAIBaseURL     string
	HTTPClientTimeout time.Duration

	// Process-wide default credentials. A session may override either one.
	SerpAPIKey string
	OpenAIKey  string
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

func LoadServer() Server {
	return Server{
		Port:         getEnv("PORT", "8080"),
		SettingsFile: getEnv("CONFIG_FILE", "config.json"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		Timezone:     getEnv("APP_TIMEZONE", "Local"),

		SessionStore: getEnv("SESSION_STORE", SessionStoreMemory),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		SessionTTL:   getEnvDuration("SESSION_TTL", 12*time.Hour),

		SerpAPIBaseURL:    getEnv("SERPAPI_BASE_URL", "https://serpapi.com"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		HTTPClientTimeout: getEnvDuration("HTTP_CLIENT_TIMEOUT", 60*time.Second),

		SerpAPIKey: os.Getenv("SERPAPI_API_KEY"),
		OpenAIKey:  os.Getenv("OPENAI_API_KEY"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
