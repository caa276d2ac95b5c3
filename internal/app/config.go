package app

import (
	"strings"
	"time"

	"github.com/smishra291/Ebook-Management-System/internal/platform/envutil"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type Config struct {
	Port             string
	CORSAllowOrigins []string
	SyncQueueSize    int
	SyncMaxAttempts  int
	SyncRetryDelay   time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.GetEnv("PORT", "8080", log)
	origins := envutil.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:4200", log)
	queueSize := envutil.GetEnvAsInt("SYNC_QUEUE_SIZE", 64, log)
	maxAttempts := envutil.GetEnvAsInt("SYNC_MAX_ATTEMPTS", 5, log)
	retrySeconds := envutil.GetEnvAsInt("SYNC_RETRY_SECONDS", 10, log)

	var allowOrigins []string
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			allowOrigins = append(allowOrigins, trimmed)
		}
	}

	return Config{
		Port:             port,
		CORSAllowOrigins: allowOrigins,
		SyncQueueSize:    queueSize,
		SyncMaxAttempts:  maxAttempts,
		SyncRetryDelay:   time.Duration(retrySeconds) * time.Second,
	}
}
