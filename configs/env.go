package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// loadEnv reads .env once. The file is optional; real environment
// variables win in deployed containers.
func loadEnv() {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

func EnvMongoURI() string {
	loadEnv()
	return os.Getenv("MONGOURI")
}

func EnvDatabaseName() string {
	loadEnv()
	return os.Getenv("DATABASE_NAME")
}

func EnvRedisURL() string {
	loadEnv()
	return os.Getenv("REDISURL")
}

func EnvNotificationChannel() string {
	loadEnv()
	return os.Getenv("NOTIFICATION_CHANNEL")
}

func EnvPort() string {
	loadEnv()
	return os.Getenv("PORT")
}

func EnvLogLevel() string {
	loadEnv()
	return os.Getenv("LOG_LEVEL")
}
