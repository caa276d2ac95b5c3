package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos"
	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"github.com/smishra291/Ebook-Management-System/internal/jobs/outbox"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

const maxOutstandingBorrows = 4

type LibraryService interface {
	ListInventory(ctx context.Context) ([]repos.InventoryItem, error)
	BorrowBook(ctx context.Context, userID, bookID uuid.UUID, dueDate time.Time) (uuid.UUID, error)
	ListBorrowed(ctx context.Context, userID uuid.UUID) ([]repos.BorrowedBookRow, error)
	ReturnBook(ctx context.Context, userID, bookID uuid.UUID) error
}

type libraryService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	inventoryRepo repos.InventoryRepo
	borrowedRepo  repos.BorrowedRepo
	syncQueue     outbox.Enqueuer
}

func NewLibraryService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	inventoryRepo repos.InventoryRepo,
	borrowedRepo repos.BorrowedRepo,
	syncQueue outbox.Enqueuer,
) LibraryService {
	return &libraryService{
		db:            db,
		log:           log.With("service", "LibraryService"),
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		borrowedRepo:  borrowedRepo,
		syncQueue:     syncQueue,
	}
}

func (ls *libraryService) ListInventory(ctx context.Context) ([]repos.InventoryItem, error) {
	items, err := ls.inventoryRepo.ListWithBooks(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	if items == nil {
		items = []repos.InventoryItem{}
	}
	return items, nil
}

// BorrowBook runs all three checks and the insert against one
// transactional snapshot. The user row is locked first, then the
// inventory row; always in that order so concurrent borrows cannot
// deadlock. The user lock serializes the per-user cap check across
// different books, the inventory lock serializes the duplicate and
// stock checks for the same book.
func (ls *libraryService) BorrowBook(ctx context.Context, userID, bookID uuid.UUID, dueDate time.Time) (uuid.UUID, error) {
	var borrowID uuid.UUID

	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		usr, err := ls.userRepo.GetByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("lock user row: %w", err)
		}
		if usr == nil {
			return apierr.NotFound("User not found")
		}

		inv, err := ls.inventoryRepo.GetByBookIDForUpdate(ctx, tx, bookID)
		if err != nil {
			return fmt.Errorf("lock inventory row: %w", err)
		}

		existing, err := ls.borrowedRepo.GetOutstanding(ctx, tx, userID, bookID)
		if err != nil {
			return fmt.Errorf("check outstanding borrow: %w", err)
		}
		if existing != nil {
			return apierr.LimitExceeded("You have already borrowed this book")
		}

		count, err := ls.borrowedRepo.CountOutstanding(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("count outstanding borrows: %w", err)
		}
		if count >= maxOutstandingBorrows {
			return apierr.LimitExceeded(fmt.Sprintf("You cannot borrow more than %d books", maxOutstandingBorrows))
		}

		if inv == nil || inv.Quantity <= 0 {
			return apierr.LimitExceeded("Book is not available in inventory")
		}

		rows, err := ls.borrowedRepo.Create(ctx, tx, []*types.Borrowed{{
			ID:           uuid.New(),
			UserID:       userID,
			BookID:       bookID,
			BorrowedDate: time.Now().UTC(),
			DueDate:      dueDate,
		}})
		if err != nil {
			return fmt.Errorf("create borrowed record: %w", err)
		}
		borrowID = rows[0].ID

		if err := ls.inventoryRepo.AdjustQuantity(ctx, tx, bookID, -1); err != nil {
			return fmt.Errorf("decrement inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	ls.scheduleSync()
	return borrowID, nil
}

func (ls *libraryService) ListBorrowed(ctx context.Context, userID uuid.UUID) ([]repos.BorrowedBookRow, error) {
	rows, err := ls.borrowedRepo.ListOutstandingWithBooks(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list borrowed books: %w", err)
	}
	if rows == nil {
		rows = []repos.BorrowedBookRow{}
	}
	return rows, nil
}

func (ls *libraryService) ReturnBook(ctx context.Context, userID, bookID uuid.UUID) error {
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := ls.borrowedRepo.GetOutstanding(ctx, tx, userID, bookID)
		if err != nil {
			return fmt.Errorf("find outstanding borrow: %w", err)
		}
		if record == nil {
			return apierr.NotFound("No borrowed record found for this user and book")
		}

		if err := ls.borrowedRepo.MarkReturned(ctx, tx, record.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("mark returned: %w", err)
		}
		if err := ls.inventoryRepo.AdjustQuantity(ctx, tx, bookID, 1); err != nil {
			return fmt.Errorf("increment inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	ls.scheduleSync()
	return nil
}

// scheduleSync runs after the relational commit; the graph projection
// catches up asynchronously and never rolls the commit back.
func (ls *libraryService) scheduleSync() {
	if ls.syncQueue == nil {
		return
	}
	ls.syncQueue.Enqueue(outbox.TaskSyncBorrowed)
	ls.syncQueue.Enqueue(outbox.TaskSyncInventory)
}
