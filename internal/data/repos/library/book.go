package library

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type BookRepo interface {
	Create(ctx context.Context, tx *gorm.DB, books []*types.Book) ([]*types.Book, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, bookIDs []uuid.UUID) ([]*types.Book, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Book, error)
	ListWithGenre(ctx context.Context, tx *gorm.DB) ([]*types.Book, error)
}

type bookRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookRepo(db *gorm.DB, baseLog *logger.Logger) BookRepo {
	return &bookRepo{db: db, log: baseLog.With("repo", "BookRepo")}
}

func (br *bookRepo) Create(ctx context.Context, tx *gorm.DB, books []*types.Book) ([]*types.Book, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	if len(books) == 0 {
		return []*types.Book{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (br *bookRepo) GetByIDs(ctx context.Context, tx *gorm.DB, bookIDs []uuid.UUID) ([]*types.Book, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.Book
	if len(bookIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", bookIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *bookRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Book, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.Book
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *bookRepo) ListWithGenre(ctx context.Context, tx *gorm.DB) ([]*types.Book, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.Book
	if err := transaction.WithContext(ctx).
		Where("genre IS NOT NULL").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
