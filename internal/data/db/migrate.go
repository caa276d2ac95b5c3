package db

import (
	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},
		&types.Book{},
		&types.Inventory{},
		&types.Borrowed{},
		&types.Review{},
	)
}
