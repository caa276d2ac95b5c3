package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review rows are append-only; nothing in this system mutates or deletes
// them after creation.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookID     uuid.UUID `gorm:"type:uuid;not null;index;column:book_id" json:"book_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Rating     int       `gorm:"not null;column:rating" json:"rating"`
	ReviewText string    `gorm:"column:review_text" json:"review_text"`
	CreatedAt  time.Time `gorm:"not null;default:now();column:created_at" json:"created_at"`
}

func (Review) TableName() string { return "review" }
