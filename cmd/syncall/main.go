// syncall rebuilds the entire graph projection from the relational store.
// It is the batch counterpart to the request-triggered sync and is safe to
// re-run at any time.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/smishra291/Ebook-Management-System/internal/data/db"
	"github.com/smishra291/Ebook-Management-System/internal/data/repos"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/platform/neo4jdb"
	"github.com/smishra291/Ebook-Management-System/internal/services"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	theDB := pg.DB()

	graphClient, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		log.Fatal("Neo4j init failed", "error", err)
	}
	ctx := context.Background()
	defer graphClient.Close(ctx)

	syncService := services.NewSyncService(
		theDB,
		log,
		graphClient,
		repos.NewUserRepo(theDB, log),
		repos.NewBookRepo(theDB, log),
		repos.NewInventoryRepo(theDB, log),
		repos.NewBorrowedRepo(theDB, log),
	)

	log.Info("Starting full sync...")
	if err := syncService.SyncAll(ctx); err != nil {
		log.Fatal("Full sync failed", "error", err)
	}
	log.Info("Sync complete.")
}
