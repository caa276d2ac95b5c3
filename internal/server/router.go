package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/smishra291/Ebook-Management-System/internal/http/handlers"
	"github.com/smishra291/Ebook-Management-System/internal/http/middleware"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type RouterConfig struct {
	Log                   *logger.Logger
	AllowOrigins          []string
	HealthHandler         *handlers.HealthHandler
	AuthHandler           *handlers.AuthHandler
	LibraryHandler        *handlers.LibraryHandler
	ReviewHandler         *handlers.ReviewHandler
	RecommendationHandler *handlers.RecommendationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	// Route shapes match the original surface; clients depend on them.
	router.POST("/login", cfg.AuthHandler.Login)
	router.GET("/inventory", cfg.LibraryHandler.GetInventory)
	router.POST("/borrow", cfg.LibraryHandler.BorrowBook)
	router.GET("/borrowed/:user_id", cfg.LibraryHandler.GetBorrowedBooks)
	router.POST("/return", cfg.LibraryHandler.ReturnBook)
	router.POST("/reviews", cfg.ReviewHandler.AddReview)
	router.GET("/reviews/:book_id", cfg.ReviewHandler.GetReviews)
	router.GET("/books/:book_id/rating", cfg.ReviewHandler.GetAverageRating)
	router.GET("/recommendations/:user_id", cfg.RecommendationHandler.GetRecommendations)

	return router
}
