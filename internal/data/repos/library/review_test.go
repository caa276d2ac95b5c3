package library

import (
	"context"
	"testing"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos/testutil"
)

func TestReviewRepoAverageRatingEmpty(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewReviewRepo(db, testutil.Logger(t))
	ctx := context.Background()

	b := testutil.SeedBook(t, ctx, tx, "Unreviewed", nil)

	avg, err := repo.AverageRating(ctx, tx, b.ID)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if avg != 0 {
		t.Fatalf("expected 0 for book with no reviews, got %v", avg)
	}
}

func TestReviewRepoAverageRating(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewReviewRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "reviewavg@example.com")
	b := testutil.SeedBook(t, ctx, tx, "Reviewed", nil)
	testutil.SeedReview(t, ctx, tx, u.ID, b.ID, 2, "meh")
	testutil.SeedReview(t, ctx, tx, u.ID, b.ID, 4, "good")

	avg, err := repo.AverageRating(ctx, tx, b.ID)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if avg != 3 {
		t.Fatalf("expected 3, got %v", avg)
	}
}

func TestReviewRepoListWithUserNames(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewReviewRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "reviewlist@example.com")
	b := testutil.SeedBook(t, ctx, tx, "Listed", nil)
	testutil.SeedReview(t, ctx, tx, u.ID, b.ID, 5, "great")

	rows, err := repo.ListWithUserNames(ctx, tx, b.ID)
	if err != nil {
		t.Fatalf("ListWithUserNames: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 review, got %d", len(rows))
	}
	if rows[0].Rating != 5 || rows[0].UserName != u.Name {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}
