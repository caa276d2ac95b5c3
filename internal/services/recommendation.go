package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smishra291/Ebook-Management-System/internal/data/graph"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/platform/neo4jdb"
)

const recommendationLimit = 5

// RecommendationService reads the graph projection only; the relational
// store is never touched on this path.
type RecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID) ([]graph.Recommendation, error)
}

type recommendationService struct {
	log    *logger.Logger
	client *neo4jdb.Client
}

func NewRecommendationService(log *logger.Logger, client *neo4jdb.Client) RecommendationService {
	return &recommendationService{
		log:    log.With("service", "RecommendationService"),
		client: client,
	}
}

func (rs *recommendationService) Recommend(ctx context.Context, userID uuid.UUID) ([]graph.Recommendation, error) {
	recs, err := graph.RecommendByGenre(ctx, rs.client, rs.log, userID, recommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("recommend by genre: %w", err)
	}
	return recs, nil
}
