package library

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

// ReviewRow is a review joined with its reviewer's name, as returned by
// GET /reviews/:book_id.
type ReviewRow struct {
	ID         uuid.UUID `json:"id"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
	UserName   string    `json:"user_name"`
}

type ReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Review) ([]*types.Review, error)
	ListWithUserNames(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) ([]ReviewRow, error)
	// AverageRating returns 0 when the book has no reviews.
	AverageRating(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) (float64, error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{db: db, log: baseLog.With("repo", "ReviewRepo")}
}

func (rr *reviewRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Review) ([]*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if len(rows) == 0 {
		return []*types.Review{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (rr *reviewRepo) ListWithUserNames(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) ([]ReviewRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []ReviewRow
	if err := transaction.WithContext(ctx).
		Table("review").
		Select(`review.id, review.rating, review.review_text, review.created_at, "user".name AS user_name`).
		Joins(`JOIN "user" ON review.user_id = "user".id`).
		Where("review.book_id = ?", bookID).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *reviewRepo) AverageRating(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) (float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var avg float64
	if err := transaction.WithContext(ctx).
		Model(&types.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("book_id = ?", bookID).
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}
