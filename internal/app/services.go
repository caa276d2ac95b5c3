package app

import (
	"gorm.io/gorm"

	"github.com/smishra291/Ebook-Management-System/internal/jobs/outbox"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/platform/neo4jdb"
	"github.com/smishra291/Ebook-Management-System/internal/services"
)

type Services struct {
	Auth           services.AuthService
	Library        services.LibraryService
	Review         services.ReviewService
	Recommendation services.RecommendationService
	Sync           services.SyncService
	SyncOutbox     *outbox.Outbox
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, graphClient *neo4jdb.Client) Services {
	log.Info("Wiring services...")

	syncService := services.NewSyncService(
		db,
		log,
		graphClient,
		reposet.User,
		reposet.Book,
		reposet.Inventory,
		reposet.Borrowed,
	)
	syncOutbox := outbox.New(log, syncService, cfg.SyncQueueSize, cfg.SyncMaxAttempts, cfg.SyncRetryDelay)

	return Services{
		Auth:           services.NewAuthService(db, log, reposet.User),
		Library:        services.NewLibraryService(db, log, reposet.User, reposet.Inventory, reposet.Borrowed, syncOutbox),
		Review:         services.NewReviewService(db, log, reposet.Review),
		Recommendation: services.NewRecommendationService(log, graphClient),
		Sync:           syncService,
		SyncOutbox:     syncOutbox,
	}
}
