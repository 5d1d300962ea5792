package mysql

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/jacksonferrigno/dxter/internal/domain/chatlog"
)

type ChatLogRepository struct {
	db *sql.DB
}

func NewChatLogRepository(db *sql.DB) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// Save inserts a chat record
func (r *ChatLogRepository) Save(ctx context.Context, rec *domain.Record) error {
	const q = `
INSERT INTO chat_history
  (id, session_id, query, response, intent, confidence, component, question_type, created_at)
VALUES (?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  response=VALUES(response), intent=VALUES(intent), confidence=VALUES(confidence);
`
	session := stringOrDash(rec.SessionID)
	intent := stringOrDash(rec.Intent)
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, q, rec.ID, session, rec.Query, rec.Response, intent, rec.Confidence, rec.Component, rec.QuestionType, createdAt)
	return err
}

// Latest returns the most recent records across all sessions
func (r *ChatLogRepository) Latest(ctx context.Context, limit int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, session_id, query, response, intent, confidence, component, question_type, created_at
FROM chat_history
ORDER BY created_at DESC, id DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// BySession returns the most recent records for one session. limit <= 0
// means no cap beyond a sane default.
func (r *ChatLogRepository) BySession(ctx context.Context, sessionID string, limit int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = 500
	}
	const q = `
SELECT id, session_id, query, response, intent, confidence, component, question_type, created_at
FROM chat_history
WHERE session_id=?
ORDER BY created_at ASC, id ASC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Stats returns the reporting aggregate
func (r *ChatLogRepository) Stats(ctx context.Context) (domain.Stats, error) {
	const q = `SELECT COUNT(*), COALESCE(AVG(confidence), 0) FROM chat_history;`
	var s domain.Stats
	if err := r.db.QueryRowContext(ctx, q).Scan(&s.TotalInteractions, &s.AvgConfidence); err != nil {
		return domain.Stats{}, err
	}
	return s, nil
}

func scanRecords(rows *sql.Rows) ([]*domain.Record, error) {
	var out []*domain.Record
	for rows.Next() {
		var rec domain.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Query, &rec.Response, &rec.Intent, &rec.Confidence, &rec.Component, &rec.QuestionType, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created
		out = append(out, &rec)
	}
	return out, rows.Err()
}
