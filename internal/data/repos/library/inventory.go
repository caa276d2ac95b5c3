package library

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

// InventoryItem is the inventory row joined with its book, as returned by
// GET /inventory.
type InventoryItem struct {
	BookID   uuid.UUID `json:"book_id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Quantity int       `json:"quantity"`
}

type InventoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Inventory) ([]*types.Inventory, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Inventory, error)
	ListWithBooks(ctx context.Context, tx *gorm.DB) ([]InventoryItem, error)
	GetByBookID(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) (*types.Inventory, error)
	// GetByBookIDForUpdate locks the inventory row for the rest of the
	// enclosing transaction, serializing concurrent borrow attempts for
	// the same book. Returns nil when no inventory row exists.
	GetByBookIDForUpdate(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) (*types.Inventory, error)
	AdjustQuantity(ctx context.Context, tx *gorm.DB, bookID uuid.UUID, delta int) error
}

type inventoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInventoryRepo(db *gorm.DB, baseLog *logger.Logger) InventoryRepo {
	return &inventoryRepo{db: db, log: baseLog.With("repo", "InventoryRepo")}
}

func (ir *inventoryRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Inventory) ([]*types.Inventory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if len(rows) == 0 {
		return []*types.Inventory{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (ir *inventoryRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Inventory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.Inventory
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *inventoryRepo) ListWithBooks(ctx context.Context, tx *gorm.DB) ([]InventoryItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []InventoryItem
	if err := transaction.WithContext(ctx).
		Table("inventory").
		Select("inventory.book_id, book.title, book.author, inventory.quantity").
		Joins("JOIN book ON inventory.book_id = book.id").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *inventoryRepo) GetByBookID(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) (*types.Inventory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var row types.Inventory
	err := transaction.WithContext(ctx).
		Where("book_id = ?", bookID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (ir *inventoryRepo) GetByBookIDForUpdate(ctx context.Context, tx *gorm.DB, bookID uuid.UUID) (*types.Inventory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var row types.Inventory
	err := transaction.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_id = ?", bookID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (ir *inventoryRepo) AdjustQuantity(ctx context.Context, tx *gorm.DB, bookID uuid.UUID, delta int) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Inventory{}).
		Where("book_id = ?", bookID).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}
