package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	StaticDir    string
	FontPath     string
	MySQLDSN     string
	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string
	LogLevel     string
}

// Load reads configuration from the environment. Empty MySQL, Redis
// and Kafka settings disable the respective adapters and the service
// runs fully in-process.
func Load() Config {
	return Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		StaticDir:    getEnv("STATIC_DIR", "static"),
		FontPath:     getEnv("QUOTE_FONT_PATH", ""),
		MySQLDSN:     getEnv("MYSQL_DSN", ""),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "quote-created"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
