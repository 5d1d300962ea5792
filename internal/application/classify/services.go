package classify

import (
	"context"

	"github.com/jacksonferrigno/dxter/internal/domain/classifier"
)

// Service exposes the raw classifier verdict for debugging and dataset
// curation, without the orchestration policy on top.
type Service struct {
	client classifier.Client
}

func NewService(client classifier.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Classify(ctx context.Context, locale, utterance string) (classifier.Result, error) {
	return s.client.Classify(ctx, locale, utterance)
}
