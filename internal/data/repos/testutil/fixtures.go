package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/smishra291/Ebook-Management-System/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:           uuid.New(),
		Name:         "Reader",
		Email:        email,
		PasswordHash: "hash",
		Role:         "member",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedBook(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, genre *string) *types.Book {
	tb.Helper()
	b := &types.Book{
		ID:            uuid.New(),
		Title:         title,
		Author:        "Author",
		YearPublished: 2001,
		Genre:         genre,
	}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed book: %v", err)
	}
	return b
}

func SeedInventory(tb testing.TB, ctx context.Context, tx *gorm.DB, bookID uuid.UUID, quantity int) *types.Inventory {
	tb.Helper()
	inv := &types.Inventory{
		ID:       uuid.New(),
		BookID:   bookID,
		Quantity: quantity,
	}
	if err := tx.WithContext(ctx).Create(inv).Error; err != nil {
		tb.Fatalf("seed inventory: %v", err)
	}
	return inv
}

func SeedBorrowed(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, bookID uuid.UUID, borrowedAt time.Time, returnedAt *time.Time) *types.Borrowed {
	tb.Helper()
	b := &types.Borrowed{
		ID:           uuid.New(),
		UserID:       userID,
		BookID:       bookID,
		BorrowedDate: borrowedAt,
		DueDate:      borrowedAt.AddDate(0, 0, 14),
		ReturnedDate: returnedAt,
	}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed borrowed: %v", err)
	}
	return b
}

func SeedReview(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, bookID uuid.UUID, rating int, text string) *types.Review {
	tb.Helper()
	r := &types.Review{
		ID:         uuid.New(),
		BookID:     bookID,
		UserID:     userID,
		Rating:     rating,
		ReviewText: text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed review: %v", err)
	}
	return r
}
