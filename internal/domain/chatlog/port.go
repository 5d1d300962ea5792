package chatlog

import "context"

// Repository port for persisting and querying chat records
type Repository interface {
	Save(ctx context.Context, r *Record) error
	Latest(ctx context.Context, limit int) ([]*Record, error)
	BySession(ctx context.Context, sessionID string, limit int) ([]*Record, error)
	Stats(ctx context.Context) (Stats, error)
}

// UnresolvedRepository persists queries the engine could not answer
type UnresolvedRepository interface {
	Save(ctx context.Context, q *UnresolvedQuery) error
	Latest(ctx context.Context, limit int) ([]*UnresolvedQuery, error)
}

// TranscriptArchive stores rendered session transcripts out of band and
// returns the object URL.
type TranscriptArchive interface {
	UploadTranscript(ctx context.Context, sessionID string, body []byte) (string, error)
}
