package app

import (
	"gorm.io/gorm"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type Repos struct {
	User      repos.UserRepo
	Book      repos.BookRepo
	Inventory repos.InventoryRepo
	Borrowed  repos.BorrowedRepo
	Review    repos.ReviewRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      repos.NewUserRepo(db, log),
		Book:      repos.NewBookRepo(db, log),
		Inventory: repos.NewInventoryRepo(db, log),
		Borrowed:  repos.NewBorrowedRepo(db, log),
		Review:    repos.NewReviewRepo(db, log),
	}
}
