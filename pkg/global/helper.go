package global

import (
	"context"
	"os"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// MongoEnabled reports whether the optional insight history store is
// configured. The pipeline runs fine without it.
func MongoEnabled() bool {
	return os.Getenv("MONGODB_URI") != ""
}

func GetMongoURI() string {
	return os.Getenv("MONGODB_URI")
}

func GetDatabaseName() string {
	return GetEnvOrDefault("MONGODB_DATABASE", "smartcommerce_insights")
}

// RedisEnabled reports whether the optional enrichment cache is
// configured.
func RedisEnabled() bool {
	return os.Getenv("REDIS_ADDRESS") != ""
}
