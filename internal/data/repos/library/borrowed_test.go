package library

import (
	"context"
	"testing"
	"time"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos/testutil"
)

func TestBorrowedRepoOutstanding(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBorrowedRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "borrowedrepo@example.com")
	b1 := testutil.SeedBook(t, ctx, tx, "Dune", nil)
	b2 := testutil.SeedBook(t, ctx, tx, "Foundation", nil)

	now := time.Now().UTC()
	testutil.SeedBorrowed(t, ctx, tx, u.ID, b1.ID, now, nil)
	returned := now.Add(time.Hour)
	testutil.SeedBorrowed(t, ctx, tx, u.ID, b2.ID, now.Add(-48*time.Hour), &returned)

	got, err := repo.GetOutstanding(ctx, tx, u.ID, b1.ID)
	if err != nil {
		t.Fatalf("GetOutstanding: %v", err)
	}
	if got == nil || got.BookID != b1.ID {
		t.Fatalf("GetOutstanding: unexpected result: %+v", got)
	}

	got, err = repo.GetOutstanding(ctx, tx, u.ID, b2.ID)
	if err != nil {
		t.Fatalf("GetOutstanding (returned): %v", err)
	}
	if got != nil {
		t.Fatalf("GetOutstanding (returned): expected nil, got %+v", got)
	}

	count, err := repo.CountOutstanding(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("CountOutstanding: %v", err)
	}
	if count != 1 {
		t.Fatalf("CountOutstanding: expected 1, got %d", count)
	}
}

func TestBorrowedRepoMarkReturned(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBorrowedRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "markreturned@example.com")
	b := testutil.SeedBook(t, ctx, tx, "Hyperion", nil)
	rec := testutil.SeedBorrowed(t, ctx, tx, u.ID, b.ID, time.Now().UTC(), nil)

	if err := repo.MarkReturned(ctx, tx, rec.ID, time.Now().UTC()); err != nil {
		t.Fatalf("MarkReturned: %v", err)
	}

	got, err := repo.GetOutstanding(ctx, tx, u.ID, b.ID)
	if err != nil {
		t.Fatalf("GetOutstanding: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no outstanding borrow after return, got %+v", got)
	}
}

func TestBorrowedRepoListLatestPerUserBook(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBorrowedRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "latestperpair@example.com")
	b := testutil.SeedBook(t, ctx, tx, "Neuromancer", nil)

	now := time.Now().UTC()
	old := now.Add(-72 * time.Hour)
	oldReturned := old.Add(time.Hour)
	testutil.SeedBorrowed(t, ctx, tx, u.ID, b.ID, old, &oldReturned)
	latest := testutil.SeedBorrowed(t, ctx, tx, u.ID, b.ID, now, nil)

	rows, err := repo.ListLatestPerUserBook(ctx, tx)
	if err != nil {
		t.Fatalf("ListLatestPerUserBook: %v", err)
	}

	var matches int
	for _, r := range rows {
		if r.UserID == u.ID && r.BookID == b.ID {
			matches++
			if r.ID != latest.ID {
				t.Fatalf("expected latest row %s, got %s", latest.ID, r.ID)
			}
		}
	}
	if matches != 1 {
		t.Fatalf("expected exactly one row for the pair, got %d", matches)
	}
}

func TestBorrowedRepoListOutstandingWithBooks(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBorrowedRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "withbooks@example.com")
	b := testutil.SeedBook(t, ctx, tx, "Snow Crash", nil)
	testutil.SeedBorrowed(t, ctx, tx, u.ID, b.ID, time.Now().UTC(), nil)

	rows, err := repo.ListOutstandingWithBooks(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListOutstandingWithBooks: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].BookID != b.ID || rows[0].Title != "Snow Crash" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}
