package library

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

// BorrowedBookRow is an outstanding borrow joined with its book, as
// returned by GET /borrowed/:user_id.
type BorrowedBookRow struct {
	BookID  uuid.UUID `json:"book_id"`
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	DueDate time.Time `json:"due_date"`
}

type BorrowedRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Borrowed) ([]*types.Borrowed, error)
	// GetOutstanding returns the user's unreturned borrow of a book, or
	// nil when there is none.
	GetOutstanding(ctx context.Context, tx *gorm.DB, userID, bookID uuid.UUID) (*types.Borrowed, error)
	CountOutstanding(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	MarkReturned(ctx context.Context, tx *gorm.DB, id uuid.UUID, returnedAt time.Time) error
	ListOutstandingWithBooks(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]BorrowedBookRow, error)
	// ListLatestPerUserBook selects one row per (user, book) pair, the one
	// with the most recent borrowed_date. Older historical rows for the
	// same pair are dropped; the graph keeps latest state, not a log.
	ListLatestPerUserBook(ctx context.Context, tx *gorm.DB) ([]*types.Borrowed, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Borrowed, error)
}

type borrowedRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBorrowedRepo(db *gorm.DB, baseLog *logger.Logger) BorrowedRepo {
	return &borrowedRepo{db: db, log: baseLog.With("repo", "BorrowedRepo")}
}

func (br *borrowedRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Borrowed) ([]*types.Borrowed, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	if len(rows) == 0 {
		return []*types.Borrowed{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (br *borrowedRepo) GetOutstanding(ctx context.Context, tx *gorm.DB, userID, bookID uuid.UUID) (*types.Borrowed, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var row types.Borrowed
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND returned_date IS NULL", userID, bookID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (br *borrowedRepo) CountOutstanding(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Borrowed{}).
		Where("user_id = ? AND returned_date IS NULL", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (br *borrowedRepo) MarkReturned(ctx context.Context, tx *gorm.DB, id uuid.UUID, returnedAt time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Borrowed{}).
		Where("id = ?", id).
		Update("returned_date", returnedAt).Error
}

func (br *borrowedRepo) ListOutstandingWithBooks(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]BorrowedBookRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []BorrowedBookRow
	if err := transaction.WithContext(ctx).
		Table("borrowed").
		Select("book.id AS book_id, book.title, book.author, borrowed.due_date").
		Joins("JOIN book ON borrowed.book_id = book.id").
		Where("borrowed.user_id = ? AND borrowed.returned_date IS NULL", userID).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *borrowedRepo) ListLatestPerUserBook(ctx context.Context, tx *gorm.DB) ([]*types.Borrowed, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.Borrowed
	if err := transaction.WithContext(ctx).
		Raw(`
SELECT DISTINCT ON (user_id, book_id)
       id, user_id, book_id, borrowed_date, due_date, returned_date
FROM borrowed
ORDER BY user_id, book_id, borrowed_date DESC
`).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *borrowedRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Borrowed, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.Borrowed
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
