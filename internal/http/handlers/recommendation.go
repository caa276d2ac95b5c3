package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smishra291/Ebook-Management-System/internal/http/response"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/services"
)

type RecommendationHandler struct {
	log                   *logger.Logger
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:                   log.With("handler", "RecommendationHandler"),
		recommendationService: recommendationService,
	}
}

func (rh *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.RespondAPIError(c, rh.log, apierr.Validation("Invalid user_id"))
		return
	}

	recs, err := rh.recommendationService.Recommend(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, rh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"recommendations": recs})
}
