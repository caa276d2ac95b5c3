package graph

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	types "github.com/smishra291/Ebook-Management-System/internal/domain"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/platform/neo4jdb"
)

// The graph is a one-way projection of relational state. Every write here
// merges by key and overwrites tracked properties, so re-running any of
// these against the same snapshot converges to the same graph.

func UpsertUsers(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, users []*types.User) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows := make([]map[string]any, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		rows = append(rows, map[string]any{
			"id":    u.ID.String(),
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
UNWIND $rows AS r
MERGE (u:User {id: r.id})
ON CREATE SET u.name = r.name, u.email = r.email, u.role = r.role
ON MATCH SET u.name = r.name, u.email = r.email, u.role = r.role
`, map[string]any{"rows": rows})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func UpsertBooks(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, books []*types.Book) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows := make([]map[string]any, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		var genre any
		if b.Genre != nil {
			genre = *b.Genre
		}
		rows = append(rows, map[string]any{
			"id":             b.ID.String(),
			"title":          b.Title,
			"author":         b.Author,
			"year_published": int64(b.YearPublished),
			"genre":          genre,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
UNWIND $rows AS r
MERGE (b:Book {id: r.id})
ON CREATE SET b.title = r.title, b.author = r.author, b.year_published = r.year_published, b.genre = r.genre
ON MATCH SET b.title = r.title, b.author = r.author, b.year_published = r.year_published, b.genre = r.genre
`, map[string]any{"rows": rows})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// MergeBorrowed merges one BORROWED edge per record, keyed by the
// relational row id. Records are written one at a time so a single bad
// record is logged and skipped without aborting the rest.
func MergeBorrowed(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, records []*types.Borrowed) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	for _, rec := range records {
		if rec == nil {
			continue
		}
		var returned any
		if rec.ReturnedDate != nil && !rec.ReturnedDate.IsZero() {
			returned = rec.ReturnedDate.UTC().Format(time.RFC3339Nano)
		}
		params := map[string]any{
			"id":            rec.ID.String(),
			"user_id":       rec.UserID.String(),
			"book_id":       rec.BookID.String(),
			"borrowed_date": rec.BorrowedDate.UTC().Format(time.RFC3339Nano),
			"due_date":      rec.DueDate.UTC().Format(time.RFC3339Nano),
			"returned_date": returned,
		}
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			res, err := tx.Run(ctx, `
MATCH (u:User {id: $user_id}), (b:Book {id: $book_id})
MERGE (u)-[r:BORROWED {id: $id}]->(b)
ON CREATE SET r.borrowed_date = $borrowed_date, r.due_date = $due_date, r.returned_date = $returned_date
ON MATCH SET r.borrowed_date = $borrowed_date, r.due_date = $due_date, r.returned_date = $returned_date
`, params)
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
			return nil, nil
		})
		if err != nil && log != nil {
			log.Warn("Failed to sync borrowed record, skipping", "borrow_id", rec.ID.String(), "error", err)
		}
	}
	return nil
}

func UpsertInventory(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, rows []*types.Inventory) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	params := make([]map[string]any, 0, len(rows))
	for _, inv := range rows {
		if inv == nil {
			continue
		}
		params = append(params, map[string]any{
			"id":       inv.ID.String(),
			"book_id":  inv.BookID.String(),
			"quantity": int64(inv.Quantity),
		})
	}
	if len(params) == 0 {
		return nil
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
UNWIND $rows AS r
MATCH (b:Book {id: r.book_id})
MERGE (inv:Inventory {id: r.id})
ON CREATE SET inv.quantity = r.quantity
ON MATCH SET inv.quantity = r.quantity
MERGE (b)-[:HAS_INVENTORY]->(inv)
`, map[string]any{"rows": params})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// MergeGenres creates a Genre node for every distinct non-null genre and a
// BELONGS_TO edge from each book carrying it.
func MergeGenres(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, books []*types.Book) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows := make([]map[string]any, 0, len(books))
	for _, b := range books {
		if b == nil || b.Genre == nil || *b.Genre == "" {
			continue
		}
		rows = append(rows, map[string]any{
			"book_id": b.ID.String(),
			"genre":   *b.Genre,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
UNWIND $rows AS r
MERGE (g:Genre {name: r.genre})
WITH g, r
MATCH (b:Book {id: r.book_id})
MERGE (b)-[:BELONGS_TO]->(g)
`, map[string]any{"rows": rows})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// MergeSimilar connects every pair of distinct books sharing a genre. The
// unconstrained self-join matches both orderings of each pair, so the edge
// is merged in both directions. Quadratic per genre bucket.
func MergeSimilar(ctx context.Context, client *neo4jdb.Client, log *logger.Logger) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (b1:Book), (b2:Book)
WHERE b1.genre = b2.genre AND b1.id <> b2.id
MERGE (b1)-[:SIMILAR_TO]->(b2)
`, nil)
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// DeleteAllBorrowed removes every BORROWED relationship, used before a
// full resync.
func DeleteAllBorrowed(ctx context.Context, client *neo4jdb.Client, log *logger.Logger) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (u:User)-[r:BORROWED]->(b:Book)
DELETE r
`, nil)
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
