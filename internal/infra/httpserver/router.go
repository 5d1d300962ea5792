package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appchat "github.com/jacksonferrigno/dxter/internal/application/chat"
	appclassify "github.com/jacksonferrigno/dxter/internal/application/classify"
	domclassifier "github.com/jacksonferrigno/dxter/internal/domain/classifier"
	"github.com/jacksonferrigno/dxter/internal/domain/respond"
	"github.com/jacksonferrigno/dxter/internal/middleware"
)

type Router struct {
	chatSvc     *appchat.Service
	classifySvc *appclassify.Service
}

type Options struct {
	RateLimitCapacity   int
	RateLimitRefillRate int
	HealthCheckers      map[string]middleware.HealthChecker
}

func NewRouter(chatSvc *appchat.Service, classifySvc *appclassify.Service, opts Options) http.Handler {
	r := &Router{chatSvc: chatSvc, classifySvc: classifySvc}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Session-ID"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	if opts.RateLimitCapacity > 0 {
		mux.Use(middleware.RateLimitMiddleware(opts.RateLimitCapacity, opts.RateLimitRefillRate))
	}

	mux.Get("/health", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Post("/classify", r.wrap(r.handleClassify))
		rt.Get("/stats", r.wrap(r.handleStats))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Get("/unresolved", r.wrap(r.handleUnresolved))
		rt.Get("/components/{name}", r.wrap(r.handleComponent))
		rt.Route("/sessions/{id}", func(st chi.Router) {
			st.Get("/context", r.wrap(r.handleGetContext))
			st.Delete("/context", r.wrap(r.handleClearContext))
			st.Get("/history", r.wrap(r.handleSessionHistory))
			st.Post("/archive", r.wrap(r.handleArchive))
		})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var br badRequestError
			switch {
			case errors.As(err, &br):
				http.Error(w, br.msg, http.StatusBadRequest)
			case errors.Is(err, appchat.ErrEmptyQuery):
				http.Error(w, "text is required", http.StatusBadRequest)
			case errors.Is(err, sql.ErrNoRows), errors.Is(err, appchat.ErrUnknownComponent):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, domclassifier.ErrUnavailable):
				middleware.IncrementClassifierErrors()
				http.Error(w, "classifier unavailable", http.StatusServiceUnavailable)
			case errors.Is(err, appchat.ErrNoPersistence), errors.Is(err, appchat.ErrNoArchive):
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// POST /v1/analyze
// Body: {"text": "...", "session_id": "...", "locale": "en"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text      string `json:"text"`
		SessionID string `json:"session_id"`
		Locale    string `json:"locale"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequestError{"invalid request body"}
	}
	if body.SessionID == "" {
		body.SessionID = req.Header.Get("X-Session-ID")
	}
	if err := middleware.ValidateUtterance(body.Text); err != nil {
		return badRequestError{err.Error()}
	}
	if err := middleware.ValidateSessionID(body.SessionID); err != nil {
		return badRequestError{err.Error()}
	}
	if err := middleware.ValidateLocale(body.Locale); err != nil {
		return badRequestError{err.Error()}
	}

	res, err := r.chatSvc.Analyze(req.Context(), appchat.AnalyzeCommand{
		SessionID: body.SessionID,
		Locale:    body.Locale,
		Text:      middleware.SanitizeString(body.Text),
	})
	if err != nil {
		return err
	}
	middleware.IncrementQueries()
	if res.Response == respond.NotUnderstood {
		middleware.IncrementUnresolved()
	}
	return writeJSON(w, res)
}

// POST /v1/classify
// Body: {"text": "...", "locale": "en"}
// Exposes the raw classifier verdict, without the orchestration policy.
func (r *Router) handleClassify(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text   string `json:"text"`
		Locale string `json:"locale"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequestError{"invalid request body"}
	}
	if err := middleware.ValidateUtterance(body.Text); err != nil {
		return badRequestError{err.Error()}
	}
	locale := body.Locale
	if locale == "" {
		locale = "en"
	}

	verdict, err := r.classifySvc.Classify(req.Context(), locale, body.Text)
	if err != nil {
		return err
	}
	return writeJSON(w, verdict)
}

// GET /v1/stats
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	stats, err := r.chatSvc.Stats(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, stats)
}

// GET /v1/history?limit=20
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.chatSvc.History(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// GET /v1/unresolved?limit=20
func (r *Router) handleUnresolved(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.chatSvc.UnresolvedQueries(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// GET /v1/components/{name}
func (r *Router) handleComponent(w http.ResponseWriter, req *http.Request) error {
	card, err := r.chatSvc.Component(chi.URLParam(req, "name"))
	if err != nil {
		return err
	}
	return writeJSON(w, card)
}

// GET /v1/sessions/{id}/context
func (r *Router) handleGetContext(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	ctx, ok := r.chatSvc.ContextOf(id)
	if !ok {
		return sql.ErrNoRows
	}
	return writeJSON(w, ctx)
}

// DELETE /v1/sessions/{id}/context
func (r *Router) handleClearContext(w http.ResponseWriter, req *http.Request) error {
	r.chatSvc.ClearContext(chi.URLParam(req, "id"))
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GET /v1/sessions/{id}/history?limit=50
func (r *Router) handleSessionHistory(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.chatSvc.SessionHistory(req.Context(), chi.URLParam(req, "id"), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// POST /v1/sessions/{id}/archive
func (r *Router) handleArchive(w http.ResponseWriter, req *http.Request) error {
	url, err := r.chatSvc.ArchiveSession(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"url": url})
}
