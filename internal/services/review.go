package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos"
	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

const (
	minRating = 1
	maxRating = 5
)

type ReviewService interface {
	AddReview(ctx context.Context, bookID, userID uuid.UUID, rating int, reviewText string) error
	ListReviews(ctx context.Context, bookID uuid.UUID) ([]repos.ReviewRow, error)
	AverageRating(ctx context.Context, bookID uuid.UUID) (float64, error)
}

type reviewService struct {
	db         *gorm.DB
	log        *logger.Logger
	reviewRepo repos.ReviewRepo
}

func NewReviewService(db *gorm.DB, log *logger.Logger, reviewRepo repos.ReviewRepo) ReviewService {
	return &reviewService{
		db:         db,
		log:        log.With("service", "ReviewService"),
		reviewRepo: reviewRepo,
	}
}

func (rs *reviewService) AddReview(ctx context.Context, bookID, userID uuid.UUID, rating int, reviewText string) error {
	if rating < minRating || rating > maxRating {
		return apierr.Validation(fmt.Sprintf("Rating must be between %d and %d", minRating, maxRating))
	}

	_, err := rs.reviewRepo.Create(ctx, nil, []*types.Review{{
		ID:         uuid.New(),
		BookID:     bookID,
		UserID:     userID,
		Rating:     rating,
		ReviewText: reviewText,
	}})
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (rs *reviewService) ListReviews(ctx context.Context, bookID uuid.UUID) ([]repos.ReviewRow, error) {
	rows, err := rs.reviewRepo.ListWithUserNames(ctx, nil, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if rows == nil {
		rows = []repos.ReviewRow{}
	}
	return rows, nil
}

func (rs *reviewService) AverageRating(ctx context.Context, bookID uuid.UUID) (float64, error) {
	avg, err := rs.reviewRepo.AverageRating(ctx, nil, bookID)
	if err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}
