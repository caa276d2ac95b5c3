package domain

import (
	"github.com/google/uuid"
)

type Book struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title         string    `gorm:"not null;column:title" json:"title"`
	Author        string    `gorm:"not null;column:author" json:"author"`
	YearPublished int       `gorm:"column:year_published" json:"year_published"`
	Genre         *string   `gorm:"column:genre" json:"genre,omitempty"`
}

func (Book) TableName() string { return "book" }

// Inventory holds the available quantity for a book, one row per book.
type Inventory struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:book_id" json:"book_id"`
	Quantity int       `gorm:"not null;default:0;column:quantity" json:"quantity"`
}

func (Inventory) TableName() string { return "inventory" }
