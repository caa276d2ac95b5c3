package graph

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/platform/neo4jdb"
)

// Recommendation is a book sharing a genre with one the user has
// borrowed, excluding books the user already borrowed.
type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

func RecommendByGenre(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, userID uuid.UUID, limit int) ([]Recommendation, error) {
	if client == nil || client.Driver == nil {
		return []Recommendation{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = 5
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (u:User {id: $user_id})-[:BORROWED]->(b:Book)-[:BELONGS_TO]->(g:Genre)<-[:BELONGS_TO]-(rec:Book)
WHERE NOT (u)-[:BORROWED]->(rec)
RETURN DISTINCT rec.title AS title, rec.author AS author, rec.year_published AS year
LIMIT $limit
`, map[string]any{
			"user_id": userID.String(),
			"limit":   int64(limit),
		})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}

	var out []Recommendation
	for _, record := range records.([]*neo4j.Record) {
		rec := Recommendation{}
		if v, ok := record.Get("title"); ok {
			if s, ok := v.(string); ok {
				rec.Title = s
			}
		}
		if v, ok := record.Get("author"); ok {
			if s, ok := v.(string); ok {
				rec.Author = s
			}
		}
		if v, ok := record.Get("year"); ok {
			if n, ok := v.(int64); ok {
				rec.Year = int(n)
			}
		}
		out = append(out, rec)
	}
	if out == nil {
		out = []Recommendation{}
	}
	return out, nil
}
