package chatlog

import "time"

// UnresolvedQuery is an utterance no branch of the resolution policy could
// answer. Kept separately so the dataset behind the classifier can be
// improved from real misses.
type UnresolvedQuery struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Query     string    `json:"query"`
	Intent    string    `json:"intent,omitempty"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
