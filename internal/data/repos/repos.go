package repos

import (
	"gorm.io/gorm"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos/library"
	"github.com/smishra291/Ebook-Management-System/internal/data/repos/user"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type UserRepo = user.UserRepo

type BookRepo = library.BookRepo
type InventoryRepo = library.InventoryRepo
type BorrowedRepo = library.BorrowedRepo
type ReviewRepo = library.ReviewRepo

type InventoryItem = library.InventoryItem
type BorrowedBookRow = library.BorrowedBookRow
type ReviewRow = library.ReviewRow

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}

func NewBookRepo(db *gorm.DB, baseLog *logger.Logger) BookRepo {
	return library.NewBookRepo(db, baseLog)
}

func NewInventoryRepo(db *gorm.DB, baseLog *logger.Logger) InventoryRepo {
	return library.NewInventoryRepo(db, baseLog)
}

func NewBorrowedRepo(db *gorm.DB, baseLog *logger.Logger) BorrowedRepo {
	return library.NewBorrowedRepo(db, baseLog)
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return library.NewReviewRepo(db, baseLog)
}
