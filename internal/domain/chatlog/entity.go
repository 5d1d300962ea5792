package chatlog

import "time"

// RecordID identifier type
type RecordID string

// Record is one resolved query/response pair stored for auditing and the
// reporting surface.
type Record struct {
	ID           RecordID  `json:"id"`
	SessionID    string    `json:"session_id"`
	Query        string    `json:"query"`
	Response     string    `json:"response"`
	Intent       string    `json:"intent"`
	Confidence   float64   `json:"confidence"`
	Component    string    `json:"component,omitempty"`
	QuestionType string    `json:"question_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats is the read-only aggregate consumed by the reporting surface.
type Stats struct {
	TotalInteractions int     `json:"total_interactions"`
	AvgConfidence     float64 `json:"avg_confidence"`
}
