package app

import (
	"github.com/smishra291/Ebook-Management-System/internal/http/handlers"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type Handlers struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Library        *handlers.LibraryHandler
	Review         *handlers.ReviewHandler
	Recommendation *handlers.RecommendationHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         handlers.NewHealthHandler(),
		Auth:           handlers.NewAuthHandler(log, serviceset.Auth),
		Library:        handlers.NewLibraryHandler(log, serviceset.Library),
		Review:         handlers.NewReviewHandler(log, serviceset.Review),
		Recommendation: handlers.NewRecommendationHandler(log, serviceset.Recommendation),
	}
}
