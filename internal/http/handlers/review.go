package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smishra291/Ebook-Management-System/internal/http/response"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/services"
)

type ReviewHandler struct {
	log           *logger.Logger
	reviewService services.ReviewService
}

func NewReviewHandler(log *logger.Logger, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{log: log.With("handler", "ReviewHandler"), reviewService: reviewService}
}

func (rh *ReviewHandler) AddReview(c *gin.Context) {
	var req struct {
		BookID     string `json:"book_id"`
		UserID     string `json:"user_id"`
		Rating     int    `json:"rating"`
		ReviewText string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BookID == "" || req.UserID == "" || req.Rating == 0 {
		response.RespondAPIError(c, rh.log, apierr.Validation("Book ID, User ID, and Rating are required"))
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		response.RespondAPIError(c, rh.log, apierr.Validation("Invalid book_id"))
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.RespondAPIError(c, rh.log, apierr.Validation("Invalid user_id"))
		return
	}

	if err := rh.reviewService.AddReview(c.Request.Context(), bookID, userID, req.Rating, req.ReviewText); err != nil {
		response.RespondAPIError(c, rh.log, err)
		return
	}
	response.RespondCreated(c, gin.H{"message": "Review added successfully"})
}

func (rh *ReviewHandler) GetReviews(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.RespondAPIError(c, rh.log, apierr.Validation("Invalid book_id"))
		return
	}

	rows, err := rh.reviewService.ListReviews(c.Request.Context(), bookID)
	if err != nil {
		response.RespondAPIError(c, rh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"reviews": rows})
}

func (rh *ReviewHandler) GetAverageRating(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.RespondAPIError(c, rh.log, apierr.Validation("Invalid book_id"))
		return
	}

	avg, err := rh.reviewService.AverageRating(c.Request.Context(), bookID)
	if err != nil {
		response.RespondAPIError(c, rh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"average_rating": avg})
}
