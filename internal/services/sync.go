package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/smishra291/Ebook-Management-System/internal/data/graph"
	"github.com/smishra291/Ebook-Management-System/internal/data/repos"
	"github.com/smishra291/Ebook-Management-System/internal/jobs/outbox"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/platform/neo4jdb"
)

// SyncService projects relational state into the graph. Every method
// reads a full snapshot (no change tracking) and upserts merge-by-key, so
// each is an idempotent bulk reconciliation safe to re-run.
type SyncService interface {
	SyncUsers(ctx context.Context) error
	SyncBooks(ctx context.Context) error
	SyncBorrowed(ctx context.Context) error
	SyncInventory(ctx context.Context) error
	SyncGenresAndRelationships(ctx context.Context) error
	CreateSimilarRelationships(ctx context.Context) error
	DeleteAllBorrowed(ctx context.Context) error
	SyncAll(ctx context.Context) error

	// Process dispatches outbox tasks to the matching sync method.
	Process(ctx context.Context, task outbox.Task) error
}

type syncService struct {
	db            *gorm.DB
	log           *logger.Logger
	client        *neo4jdb.Client
	userRepo      repos.UserRepo
	bookRepo      repos.BookRepo
	inventoryRepo repos.InventoryRepo
	borrowedRepo  repos.BorrowedRepo
}

func NewSyncService(
	db *gorm.DB,
	log *logger.Logger,
	client *neo4jdb.Client,
	userRepo repos.UserRepo,
	bookRepo repos.BookRepo,
	inventoryRepo repos.InventoryRepo,
	borrowedRepo repos.BorrowedRepo,
) SyncService {
	return &syncService{
		db:            db,
		log:           log.With("service", "SyncService"),
		client:        client,
		userRepo:      userRepo,
		bookRepo:      bookRepo,
		inventoryRepo: inventoryRepo,
		borrowedRepo:  borrowedRepo,
	}
}

func (ss *syncService) SyncUsers(ctx context.Context) error {
	users, err := ss.userRepo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("read users: %w", err)
	}
	if err := graph.UpsertUsers(ctx, ss.client, ss.log, users); err != nil {
		return fmt.Errorf("upsert user nodes: %w", err)
	}
	ss.log.Info("Users synced to graph", "count", len(users))
	return nil
}

func (ss *syncService) SyncBooks(ctx context.Context) error {
	books, err := ss.bookRepo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("read books: %w", err)
	}
	if err := graph.UpsertBooks(ctx, ss.client, ss.log, books); err != nil {
		return fmt.Errorf("upsert book nodes: %w", err)
	}
	ss.log.Info("Books synced to graph", "count", len(books))
	return nil
}

func (ss *syncService) SyncBorrowed(ctx context.Context) error {
	records, err := ss.borrowedRepo.ListLatestPerUserBook(ctx, nil)
	if err != nil {
		return fmt.Errorf("read borrowed records: %w", err)
	}
	if err := graph.MergeBorrowed(ctx, ss.client, ss.log, records); err != nil {
		return fmt.Errorf("merge borrowed edges: %w", err)
	}
	ss.log.Info("Borrowed records synced to graph", "count", len(records))
	return nil
}

func (ss *syncService) SyncInventory(ctx context.Context) error {
	rows, err := ss.inventoryRepo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("read inventory: %w", err)
	}
	if err := graph.UpsertInventory(ctx, ss.client, ss.log, rows); err != nil {
		return fmt.Errorf("upsert inventory nodes: %w", err)
	}
	ss.log.Info("Inventory synced to graph", "count", len(rows))
	return nil
}

func (ss *syncService) SyncGenresAndRelationships(ctx context.Context) error {
	books, err := ss.bookRepo.ListWithGenre(ctx, nil)
	if err != nil {
		return fmt.Errorf("read books with genre: %w", err)
	}
	if err := graph.MergeGenres(ctx, ss.client, ss.log, books); err != nil {
		return fmt.Errorf("merge genre nodes: %w", err)
	}
	ss.log.Info("Genres synced to graph", "count", len(books))
	return nil
}

func (ss *syncService) CreateSimilarRelationships(ctx context.Context) error {
	if err := graph.MergeSimilar(ctx, ss.client, ss.log); err != nil {
		return fmt.Errorf("merge similar edges: %w", err)
	}
	ss.log.Info("SIMILAR_TO relationships created")
	return nil
}

func (ss *syncService) DeleteAllBorrowed(ctx context.Context) error {
	if err := graph.DeleteAllBorrowed(ctx, ss.client, ss.log); err != nil {
		return fmt.Errorf("delete borrowed edges: %w", err)
	}
	ss.log.Info("All BORROWED relationships deleted from graph")
	return nil
}

// SyncAll is the batch entry point; the API layer never calls it.
func (ss *syncService) SyncAll(ctx context.Context) error {
	if err := ss.SyncUsers(ctx); err != nil {
		return err
	}
	if err := ss.SyncBooks(ctx); err != nil {
		return err
	}
	if err := ss.DeleteAllBorrowed(ctx); err != nil {
		return err
	}
	if err := ss.SyncBorrowed(ctx); err != nil {
		return err
	}
	if err := ss.SyncInventory(ctx); err != nil {
		return err
	}
	if err := ss.SyncGenresAndRelationships(ctx); err != nil {
		return err
	}
	return ss.CreateSimilarRelationships(ctx)
}

func (ss *syncService) Process(ctx context.Context, task outbox.Task) error {
	switch task {
	case outbox.TaskSyncBorrowed:
		return ss.SyncBorrowed(ctx)
	case outbox.TaskSyncInventory:
		return ss.SyncInventory(ctx)
	default:
		return fmt.Errorf("unknown sync task %q", task)
	}
}
