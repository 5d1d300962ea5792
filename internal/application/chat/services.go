package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jacksonferrigno/dxter/internal/application"
	"github.com/jacksonferrigno/dxter/internal/domain/analysis"
	"github.com/jacksonferrigno/dxter/internal/domain/chatlog"
	"github.com/jacksonferrigno/dxter/internal/domain/classifier"
	"github.com/jacksonferrigno/dxter/internal/domain/conversation"
	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
	"github.com/jacksonferrigno/dxter/internal/domain/respond"
)

var (
	ErrEmptyQuery       = errors.New("empty query")
	ErrUnknownComponent = errors.New("unknown component")
	// ErrNoPersistence is returned by read endpoints when the service runs
	// without a database.
	ErrNoPersistence = errors.New("persistence not configured")
	ErrNoArchive     = errors.New("transcript archive not configured")
)

var (
	greetingPattern = regexp.MustCompile(`^(hi|hey|hello|greetings)`)
	farewellPattern = regexp.MustCompile(`^(thanks|thank you|bye|goodbye)`)
)

// Service implements the query-resolution use cases.
// Service is designed to be used concurrently and is thread-safe; the only
// mutable state it touches is the context store, which locks per session.
type Service struct {
	Knowledge  *knowledge.Base
	Contexts   *conversation.Store
	Classifier classifier.Client
	Logs       chatlog.Repository
	Unresolved chatlog.UnresolvedRepository
	Archive    chatlog.TranscriptArchive
	Clock      application.Clock
}

// AnalyzeCommand is one inbound utterance.
type AnalyzeCommand struct {
	SessionID string
	Locale    string
	Text      string
}

type AnalyzeResult struct {
	SessionID    string  `json:"session_id"`
	Response     string  `json:"response"`
	Intent       string  `json:"intent,omitempty"`
	Confidence   float64 `json:"confidence"`
	Component    string  `json:"component,omitempty"`
	Status       string  `json:"status,omitempty"`
	ProcessingMS int64   `json:"processing_ms"`
}

// Analyze resolves one utterance. Branches are tried in fixed priority
// order and the first applicable one wins: greeting and farewell shortcuts,
// then a literal numeric claim, then treatment phrasing, then the intent
// classifier. A number in the text beats any classifier guess because it is
// strictly higher-precision evidence.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (AnalyzeResult, error) {
	start := s.Clock.Now()

	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return AnalyzeResult{}, ErrEmptyQuery
	}

	sessionID := cmd.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	locale := cmd.Locale
	if locale == "" {
		locale = "en"
	}

	done := func(res AnalyzeResult) AnalyzeResult {
		res.SessionID = sessionID
		res.ProcessingMS = s.Clock.Now().Sub(start).Milliseconds()
		return res
	}

	normalized := strings.ToLower(text)
	if greetingPattern.MatchString(normalized) {
		return done(AnalyzeResult{Response: respond.Greeting}), nil
	}
	if farewellPattern.MatchString(normalized) {
		return done(AnalyzeResult{Response: respond.Farewell}), nil
	}

	if value, ok := analysis.ExtractNumber(text); ok {
		if res, ok := analysis.AnalyzeNumeric(s.Knowledge, text, value); ok {
			intent := classifier.Intent{Kind: classifier.KindAnalyze, Component: res.Component}
			s.Contexts.Update(sessionID, conversation.Update{
				Component:    res.Component,
				Value:        &res.Value,
				Status:       res.Status,
				LastIntent:   intent.String(),
				LastQuestion: text,
			})
			s.record(ctx, sessionID, text, res.Response, intent.String(), 1, string(res.Component), "numeric")
			return done(AnalyzeResult{
				Response:   res.Response,
				Intent:     intent.String(),
				Confidence: 1,
				Component:  string(res.Component),
				Status:     string(res.Status),
			}), nil
		}
	}

	if analysis.IsTreatmentQuestion(text) {
		prior, _ := s.Contexts.Get(sessionID)
		answer, resolution := analysis.ResolveTreatment(s.Knowledge, text, prior.Component, prior.Status)
		if resolution == nil {
			s.record(ctx, sessionID, text, answer, "unknown", 0, "", "clarification")
			return done(AnalyzeResult{Response: answer}), nil
		}
		intent := classifier.Intent{Kind: classifier.KindTreatment, Component: resolution.Component, Status: resolution.Status}
		s.Contexts.Update(sessionID, conversation.Update{
			Component:    resolution.Component,
			Status:       resolution.Status,
			LastIntent:   intent.String(),
			LastQuestion: text,
		})
		s.record(ctx, sessionID, text, answer, intent.String(), 1, string(resolution.Component), "treatment")
		return done(AnalyzeResult{
			Response:   answer,
			Intent:     intent.String(),
			Confidence: 1,
			Component:  string(resolution.Component),
			Status:     string(resolution.Status),
		}), nil
	}

	verdict, err := s.Classifier.Classify(ctx, locale, text)
	if err != nil {
		return AnalyzeResult{}, err
	}

	intent := classifier.ParseIntent(verdict.Intent)
	prior, _ := s.Contexts.Get(sessionID)
	answer, update, ok := s.compose(intent, prior)
	if !ok {
		s.recordUnresolved(ctx, sessionID, text, verdict)
		s.record(ctx, sessionID, text, respond.NotUnderstood, verdict.Intent, verdict.Score, "", "general")
		return done(AnalyzeResult{
			Response:   respond.NotUnderstood,
			Intent:     verdict.Intent,
			Confidence: verdict.Score,
		}), nil
	}

	if update != nil {
		update.LastIntent = intent.String()
		update.LastQuestion = text
		s.Contexts.Update(sessionID, *update)
	}
	s.record(ctx, sessionID, text, answer, intent.String(), verdict.Score, string(intent.Component), string(intent.Kind))
	return done(AnalyzeResult{
		Response:   answer,
		Intent:     intent.String(),
		Confidence: verdict.Score,
		Component:  string(intent.Component),
		Status:     string(intent.Status),
	}), nil
}

// compose maps a parsed intent onto a rendered answer. The returned update,
// when non-nil, is what the turn should persist into the session context.
// ok is false when the intent cannot be answered.
func (s *Service) compose(intent classifier.Intent, prior conversation.Context) (string, *conversation.Update, bool) {
	switch intent.Kind {
	case classifier.KindOverview:
		return respond.Overview(s.Knowledge), nil, true
	case classifier.KindContextual:
		if prior.Component == "" || prior.Status == "" {
			return respond.ContextClarification, nil, true
		}
		info, ok := s.Knowledge.Lookup(prior.Component)
		if !ok {
			return respond.ContextClarification, nil, true
		}
		return respond.Contextual(prior.Component, info, prior.Status), nil, true
	}

	if intent.Component == "" {
		return "", nil, false
	}
	info, ok := s.Knowledge.Lookup(intent.Component)
	if !ok {
		return "", nil, false
	}

	switch intent.Kind {
	case classifier.KindBasic, classifier.KindAnalyze:
		// KindAnalyze with no literal number in the text has nothing to
		// classify, so fall back to the component overview.
		return respond.Basic(intent.Component, info),
			&conversation.Update{Component: intent.Component}, true
	case classifier.KindStatusDetail:
		return respond.StatusDetail(intent.Component, info, intent.Status),
			&conversation.Update{Component: intent.Component, Status: intent.Status}, true
	case classifier.KindRange:
		r, err := s.Knowledge.Range(intent.Component)
		if err != nil {
			return "", nil, false
		}
		return respond.Range(intent.Component, info, r),
			&conversation.Update{Component: intent.Component}, true
	case classifier.KindMaintain:
		return respond.Maintenance(intent.Component, info),
			&conversation.Update{Component: intent.Component}, true
	case classifier.KindImprove:
		dir := knowledge.DirectionIncrease
		if intent.Status == knowledge.StatusHigh {
			dir = knowledge.DirectionDecrease
		}
		return respond.Improvement(intent.Component, info, dir),
			&conversation.Update{Component: intent.Component}, true
	case classifier.KindTreatment:
		return respond.Treatment(intent.Component, intent.Status, info.Treatment[intent.Status]),
			&conversation.Update{Component: intent.Component, Status: intent.Status}, true
	}
	return "", nil, false
}

// record persists a resolved turn. Fire-and-forget: a sink failure is
// logged and never surfaced to the caller.
func (s *Service) record(ctx context.Context, sessionID, query, response, intent string, confidence float64, component, questionType string) {
	if s.Logs == nil {
		return
	}
	rec := &chatlog.Record{
		ID:           chatlog.RecordID(uuid.New().String()),
		SessionID:    sessionID,
		Query:        query,
		Response:     response,
		Intent:       intent,
		Confidence:   confidence,
		Component:    component,
		QuestionType: questionType,
		CreatedAt:    s.Clock.Now(),
	}
	if err := s.Logs.Save(ctx, rec); err != nil {
		log.Printf("chatlog: save failed: %v", err)
	}
}

func (s *Service) recordUnresolved(ctx context.Context, sessionID, query string, verdict classifier.Result) {
	if s.Unresolved == nil {
		return
	}
	q := &chatlog.UnresolvedQuery{
		SessionID: sessionID,
		Query:     query,
		Intent:    verdict.Intent,
		Score:     verdict.Score,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Unresolved.Save(ctx, q); err != nil {
		log.Printf("chatlog: unresolved save failed: %v", err)
	}
}

// ContextOf returns the remembered context for a session.
func (s *Service) ContextOf(sessionID string) (conversation.Context, bool) {
	return s.Contexts.Get(sessionID)
}

// ClearContext forgets a session entirely.
func (s *Service) ClearContext(sessionID string) {
	s.Contexts.Clear(sessionID)
}

// Stats returns the reporting aggregate.
func (s *Service) Stats(ctx context.Context) (chatlog.Stats, error) {
	if s.Logs == nil {
		return chatlog.Stats{}, ErrNoPersistence
	}
	return s.Logs.Stats(ctx)
}

// History returns the most recent records across all sessions.
func (s *Service) History(ctx context.Context, limit int) ([]*chatlog.Record, error) {
	if s.Logs == nil {
		return nil, ErrNoPersistence
	}
	return s.Logs.Latest(ctx, limit)
}

// SessionHistory returns the most recent records for one session.
func (s *Service) SessionHistory(ctx context.Context, sessionID string, limit int) ([]*chatlog.Record, error) {
	if s.Logs == nil {
		return nil, ErrNoPersistence
	}
	return s.Logs.BySession(ctx, sessionID, limit)
}

// UnresolvedQueries returns recent utterances nothing could answer.
func (s *Service) UnresolvedQueries(ctx context.Context, limit int) ([]*chatlog.UnresolvedQuery, error) {
	if s.Unresolved == nil {
		return nil, ErrNoPersistence
	}
	return s.Unresolved.Latest(ctx, limit)
}

// ComponentOverview is the reference card for one component.
type ComponentOverview struct {
	Component   string `json:"component"`
	Description string `json:"description"`
	NormalRange string `json:"normal_range"`
	Function    string `json:"function"`
	Overview    string `json:"overview"`
}

// Component returns the reference card for a named component.
func (s *Service) Component(name string) (ComponentOverview, error) {
	c, ok := knowledge.ParseComponent(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return ComponentOverview{}, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	info, ok := s.Knowledge.Lookup(c)
	if !ok {
		return ComponentOverview{}, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return ComponentOverview{
		Component:   string(c),
		Description: info.Description,
		NormalRange: info.NormalRange,
		Function:    info.Function,
		Overview:    respond.Basic(c, info),
	}, nil
}

// ArchiveSession renders the session transcript and uploads it to the
// archive, returning the object URL.
func (s *Service) ArchiveSession(ctx context.Context, sessionID string) (string, error) {
	if s.Archive == nil {
		return "", ErrNoArchive
	}
	if s.Logs == nil {
		return "", ErrNoPersistence
	}
	records, err := s.Logs.BySession(ctx, sessionID, 0)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("session: " + sessionID + "\n")
	b.WriteString("archived: " + s.Clock.Now().UTC().Format("2006-01-02T15:04:05Z07:00") + "\n\n")
	for _, r := range records {
		b.WriteString("[" + r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00") + "] user: " + r.Query + "\n")
		b.WriteString("assistant (" + r.Intent + "): " + r.Response + "\n\n")
	}
	return s.Archive.UploadTranscript(ctx, sessionID, []byte(b.String()))
}
