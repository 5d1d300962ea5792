package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonferrigno/dxter/internal/domain/chatlog"
	"github.com/jacksonferrigno/dxter/internal/domain/classifier"
	"github.com/jacksonferrigno/dxter/internal/domain/conversation"
	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
	"github.com/jacksonferrigno/dxter/internal/domain/respond"
	"github.com/jacksonferrigno/dxter/internal/infra/classifier/rules"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type scriptedClassifier struct {
	result classifier.Result
	err    error
}

func (s scriptedClassifier) Classify(context.Context, string, string) (classifier.Result, error) {
	return s.result, s.err
}

type memLogs struct {
	records []*chatlog.Record
}

func (m *memLogs) Save(_ context.Context, r *chatlog.Record) error {
	m.records = append(m.records, r)
	return nil
}

func (m *memLogs) Latest(_ context.Context, limit int) ([]*chatlog.Record, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	out := make([]*chatlog.Record, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *memLogs) BySession(_ context.Context, sessionID string, _ int) ([]*chatlog.Record, error) {
	var out []*chatlog.Record
	for _, r := range m.records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memLogs) Stats(context.Context) (chatlog.Stats, error) {
	s := chatlog.Stats{TotalInteractions: len(m.records)}
	for _, r := range m.records {
		s.AvgConfidence += r.Confidence
	}
	if len(m.records) > 0 {
		s.AvgConfidence /= float64(len(m.records))
	}
	return s, nil
}

type memUnresolved struct {
	queries []*chatlog.UnresolvedQuery
}

func (m *memUnresolved) Save(_ context.Context, q *chatlog.UnresolvedQuery) error {
	m.queries = append(m.queries, q)
	return nil
}

func (m *memUnresolved) Latest(_ context.Context, _ int) ([]*chatlog.UnresolvedQuery, error) {
	return m.queries, nil
}

type memArchive struct {
	uploads map[string][]byte
}

func (m *memArchive) UploadTranscript(_ context.Context, sessionID string, body []byte) (string, error) {
	if m.uploads == nil {
		m.uploads = map[string][]byte{}
	}
	m.uploads[sessionID] = body
	return "http://archive.local/" + sessionID, nil
}

func newService(clf classifier.Client) (*Service, *memLogs, *memUnresolved) {
	logs := &memLogs{}
	unresolved := &memUnresolved{}
	base := knowledge.Default()
	if clf == nil {
		clf = rules.NewClient(base)
	}
	svc := &Service{
		Knowledge:  base,
		Contexts:   conversation.NewStore(),
		Classifier: clf,
		Logs:       logs,
		Unresolved: unresolved,
		Clock:      fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	return svc, logs, unresolved
}

func TestAnalyzeEmptyQuery(t *testing.T) {
	svc, _, _ := newService(nil)
	_, err := svc.Analyze(context.Background(), AnalyzeCommand{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestAnalyzeGreetingAndFarewell(t *testing.T) {
	svc, logs, _ := newService(nil)

	res, err := svc.Analyze(context.Background(), AnalyzeCommand{Text: "hello there"})
	require.NoError(t, err)
	assert.Equal(t, respond.Greeting, res.Response)
	assert.NotEmpty(t, res.SessionID, "a session id is minted when none is given")

	res, err = svc.Analyze(context.Background(), AnalyzeCommand{Text: "thanks, bye"})
	require.NoError(t, err)
	assert.Equal(t, respond.Farewell, res.Response)

	assert.Empty(t, logs.records, "shortcuts are not persisted")
}

func TestAnalyzeNumericThenTreatmentFollowUp(t *testing.T) {
	svc, logs, _ := newService(nil)
	ctx := context.Background()

	res, err := svc.Analyze(ctx, AnalyzeCommand{SessionID: "s1", Text: "my hemoglobin is 9"})
	require.NoError(t, err)
	assert.Equal(t, "hemoglobin", res.Component)
	assert.Equal(t, "low", res.Status)
	assert.Equal(t, "hemoglobin.analyze", res.Intent)
	assert.Contains(t, res.Response, "LOW")

	remembered, ok := svc.ContextOf("s1")
	require.True(t, ok)
	assert.Equal(t, knowledge.Hemoglobin, remembered.Component)
	assert.Equal(t, knowledge.StatusLow, remembered.Status)
	require.NotNil(t, remembered.Value)
	assert.Equal(t, 9.0, *remembered.Value)

	res, err = svc.Analyze(ctx, AnalyzeCommand{SessionID: "s1", Text: "how do I treat it"})
	require.NoError(t, err)
	assert.Equal(t, "hemoglobin.treatment.low", res.Intent)
	assert.Contains(t, res.Response, "• Iron supplements")

	require.Len(t, logs.records, 2)
	assert.Equal(t, "numeric", logs.records[0].QuestionType)
	assert.Equal(t, "treatment", logs.records[1].QuestionType)
}

func TestAnalyzeTreatmentRedirectsStatus(t *testing.T) {
	svc, _, _ := newService(nil)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, AnalyzeCommand{SessionID: "s1", Text: "my hemoglobin is 9"})
	require.NoError(t, err)

	res, err := svc.Analyze(ctx, AnalyzeCommand{SessionID: "s1", Text: "what about treatment for high?"})
	require.NoError(t, err)
	assert.Equal(t, "hemoglobin.treatment.high", res.Intent)

	remembered, _ := svc.ContextOf("s1")
	assert.Equal(t, knowledge.StatusHigh, remembered.Status, "redirect persists the new status")
}

func TestAnalyzeTreatmentWithoutContextClarifies(t *testing.T) {
	svc, _, _ := newService(nil)

	res, err := svc.Analyze(context.Background(), AnalyzeCommand{SessionID: "fresh", Text: "how do I treat it"})
	require.NoError(t, err)
	assert.Equal(t, respond.TreatmentClarification, res.Response)

	_, ok := svc.ContextOf("fresh")
	assert.False(t, ok, "a clarification writes no context")
}

func TestAnalyzeHighPlatelets(t *testing.T) {
	svc, _, _ := newService(nil)

	res, err := svc.Analyze(context.Background(), AnalyzeCommand{SessionID: "s2", Text: "platelets at 500,000"})
	require.NoError(t, err)
	assert.Equal(t, "high", res.Status)
	assert.Contains(t, res.Response, "500,000 is HIGH")
}

func TestAnalyzeSessionIsolation(t *testing.T) {
	svc, _, _ := newService(nil)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, AnalyzeCommand{SessionID: "a", Text: "my hemoglobin is 9"})
	require.NoError(t, err)
	_, err = svc.Analyze(ctx, AnalyzeCommand{SessionID: "b", Text: "wbc count is 12000"})
	require.NoError(t, err)

	a, _ := svc.ContextOf("a")
	b, _ := svc.ContextOf("b")
	assert.Equal(t, knowledge.Hemoglobin, a.Component)
	assert.Equal(t, knowledge.WBC, b.Component)
}

func TestAnalyzeClassifierDispatch(t *testing.T) {
	svc, _, _ := newService(scriptedClassifier{
		result: classifier.Result{Intent: "hemoglobin.range", Score: 0.92},
	})

	res, err := svc.Analyze(context.Background(), AnalyzeCommand{SessionID: "s3", Text: "what range should it be in"})
	require.NoError(t, err)
	assert.Equal(t, "hemoglobin.range", res.Intent)
	assert.Equal(t, 0.92, res.Confidence)
	assert.Contains(t, res.Response, "Normal Range for HEMOGLOBIN")

	remembered, _ := svc.ContextOf("s3")
	assert.Equal(t, knowledge.Hemoglobin, remembered.Component)
}

func TestAnalyzeContextualFollowUp(t *testing.T) {
	svc, _, _ := newService(scriptedClassifier{
		result: classifier.Result{Intent: "blood.context", Score: 0.8},
	})
	ctx := context.Background()

	_, err := svc.Analyze(ctx, AnalyzeCommand{SessionID: "s4", Text: "my hemoglobin is 9"})
	require.NoError(t, err)

	res, err := svc.Analyze(ctx, AnalyzeCommand{SessionID: "s4", Text: "is that serious"})
	require.NoError(t, err)
	assert.Contains(t, res.Response, "Based on your hemoglobin being low")
}

func TestAnalyzeContextualWithoutHistory(t *testing.T) {
	svc, _, _ := newService(scriptedClassifier{
		result: classifier.Result{Intent: "blood.context", Score: 0.8},
	})

	res, err := svc.Analyze(context.Background(), AnalyzeCommand{SessionID: "empty", Text: "is that serious"})
	require.NoError(t, err)
	assert.Equal(t, respond.ContextClarification, res.Response)
}

func TestAnalyzeUnknownIntentRecordsUnresolved(t *testing.T) {
	svc, logs, unresolved := newService(scriptedClassifier{
		result: classifier.Result{Intent: "gibberish.nonsense", Score: 0.1},
	})

	res, err := svc.Analyze(context.Background(), AnalyzeCommand{SessionID: "s5", Text: "what about my shoe size"})
	require.NoError(t, err)
	assert.Equal(t, respond.NotUnderstood, res.Response)

	require.Len(t, unresolved.queries, 1)
	assert.Equal(t, "what about my shoe size", unresolved.queries[0].Query)
	assert.Equal(t, "gibberish.nonsense", unresolved.queries[0].Intent)
	require.Len(t, logs.records, 1)
}

func TestAnalyzeClassifierUnavailable(t *testing.T) {
	svc, _, _ := newService(scriptedClassifier{err: classifier.ErrUnavailable})

	_, err := svc.Analyze(context.Background(), AnalyzeCommand{Text: "something vague"})
	assert.ErrorIs(t, err, classifier.ErrUnavailable)
}

func TestStatsWithoutPersistence(t *testing.T) {
	svc, _, _ := newService(nil)
	svc.Logs = nil

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrNoPersistence)
}

func TestComponentCard(t *testing.T) {
	svc, _, _ := newService(nil)

	card, err := svc.Component("Hemoglobin")
	require.NoError(t, err)
	assert.Equal(t, "hemoglobin", card.Component)
	assert.Equal(t, "12-17 g/dL", card.NormalRange)
	assert.Contains(t, card.Overview, "**HEMOGLOBIN**")

	_, err = svc.Component("glucose")
	assert.True(t, errors.Is(err, ErrUnknownComponent))
}

func TestArchiveSession(t *testing.T) {
	svc, _, _ := newService(nil)
	archive := &memArchive{}
	svc.Archive = archive
	ctx := context.Background()

	_, err := svc.Analyze(ctx, AnalyzeCommand{SessionID: "s6", Text: "my hemoglobin is 9"})
	require.NoError(t, err)

	url, err := svc.ArchiveSession(ctx, "s6")
	require.NoError(t, err)
	assert.Equal(t, "http://archive.local/s6", url)

	transcript := string(archive.uploads["s6"])
	assert.True(t, strings.Contains(transcript, "user: my hemoglobin is 9"))
	assert.Contains(t, transcript, "hemoglobin.analyze")
}

func TestArchiveSessionWithoutArchive(t *testing.T) {
	svc, _, _ := newService(nil)
	_, err := svc.ArchiveSession(context.Background(), "s")
	assert.ErrorIs(t, err, ErrNoArchive)
}
