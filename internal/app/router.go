package app

import (
	"github.com/gin-gonic/gin"

	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                   log,
		AllowOrigins:          cfg.CORSAllowOrigins,
		HealthHandler:         handlerset.Health,
		AuthHandler:           handlerset.Auth,
		LibraryHandler:        handlerset.Library,
		ReviewHandler:         handlerset.Review,
		RecommendationHandler: handlerset.Recommendation,
	})
}
