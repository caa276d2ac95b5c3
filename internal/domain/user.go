package domain

import (
	"github.com/google/uuid"
)

// User rows are created externally (seeding, admin tooling); this system
// only reads them during login and review attribution.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	Role         string    `gorm:"not null;column:role" json:"role"`
}

func (User) TableName() string { return "user" }
