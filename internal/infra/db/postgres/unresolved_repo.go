package postgres

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/jacksonferrigno/dxter/internal/domain/chatlog"
)

type UnresolvedRepository struct {
	db *sql.DB
}

func NewUnresolvedRepository(db *sql.DB) *UnresolvedRepository {
	return &UnresolvedRepository{db: db}
}

// Save inserts an unresolved query entry
func (r *UnresolvedRepository) Save(ctx context.Context, q *domain.UnresolvedQuery) error {
	const stmt = `
INSERT INTO unresolved_queries
  (session_id, query, intent, score, created_at)
VALUES ($1,$2,$3,$4,$5);
`
	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, stmt, stringOrDash(q.SessionID), q.Query, q.Intent, q.Score, createdAt)
	return err
}

// Latest returns the most recent unresolved queries
func (r *UnresolvedRepository) Latest(ctx context.Context, limit int) ([]*domain.UnresolvedQuery, error) {
	if limit <= 0 {
		limit = 20
	}
	const stmt = `
SELECT id, session_id, query, intent, score, created_at
FROM unresolved_queries
ORDER BY created_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, stmt, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.UnresolvedQuery
	for rows.Next() {
		var q domain.UnresolvedQuery
		var created time.Time
		if err := rows.Scan(&q.ID, &q.SessionID, &q.Query, &q.Intent, &q.Score, &created); err != nil {
			return nil, err
		}
		q.CreatedAt = created
		out = append(out, &q)
	}
	return out, rows.Err()
}
