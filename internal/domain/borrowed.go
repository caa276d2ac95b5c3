package domain

import (
	"time"

	"github.com/google/uuid"
)

// Borrowed is one lending record. A row with a nil ReturnedDate is an
// outstanding borrow; a user holds at most one outstanding row per book
// and at most four outstanding rows total.
type Borrowed struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	BookID       uuid.UUID  `gorm:"type:uuid;not null;index;column:book_id" json:"book_id"`
	BorrowedDate time.Time  `gorm:"not null;default:now();column:borrowed_date" json:"borrowed_date"`
	DueDate      time.Time  `gorm:"not null;column:due_date" json:"due_date"`
	ReturnedDate *time.Time `gorm:"column:returned_date" json:"returned_date,omitempty"`
}

func (Borrowed) TableName() string { return "borrowed" }
