package library

import (
	"context"
	"testing"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos/testutil"
)

func TestInventoryRepoAdjustQuantity(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewInventoryRepo(db, testutil.Logger(t))
	ctx := context.Background()

	b := testutil.SeedBook(t, ctx, tx, "Stocked", nil)
	testutil.SeedInventory(t, ctx, tx, b.ID, 3)

	if err := repo.AdjustQuantity(ctx, tx, b.ID, -1); err != nil {
		t.Fatalf("AdjustQuantity(-1): %v", err)
	}
	inv, err := repo.GetByBookID(ctx, tx, b.ID)
	if err != nil {
		t.Fatalf("GetByBookID: %v", err)
	}
	if inv == nil || inv.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %+v", inv)
	}

	if err := repo.AdjustQuantity(ctx, tx, b.ID, 1); err != nil {
		t.Fatalf("AdjustQuantity(+1): %v", err)
	}
	inv, err = repo.GetByBookID(ctx, tx, b.ID)
	if err != nil {
		t.Fatalf("GetByBookID: %v", err)
	}
	if inv == nil || inv.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %+v", inv)
	}
}

func TestInventoryRepoGetByBookIDMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewInventoryRepo(db, testutil.Logger(t))
	ctx := context.Background()

	b := testutil.SeedBook(t, ctx, tx, "No Inventory", nil)

	inv, err := repo.GetByBookID(ctx, tx, b.ID)
	if err != nil {
		t.Fatalf("GetByBookID: %v", err)
	}
	if inv != nil {
		t.Fatalf("expected nil for missing inventory row, got %+v", inv)
	}
}

func TestInventoryRepoListWithBooks(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewInventoryRepo(db, testutil.Logger(t))
	ctx := context.Background()

	b := testutil.SeedBook(t, ctx, tx, "Joined", nil)
	testutil.SeedInventory(t, ctx, tx, b.ID, 7)

	items, err := repo.ListWithBooks(ctx, tx)
	if err != nil {
		t.Fatalf("ListWithBooks: %v", err)
	}

	var found bool
	for _, it := range items {
		if it.BookID == b.ID {
			found = true
			if it.Title != "Joined" || it.Quantity != 7 {
				t.Fatalf("unexpected item: %+v", it)
			}
		}
	}
	if !found {
		t.Fatalf("seeded book not present in inventory listing")
	}
}
