package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	appai "github.com/bryanwahyu/truthlens/internal/application/ai"
	domai "github.com/bryanwahyu/truthlens/internal/domain/ai"
	"github.com/bryanwahyu/truthlens/internal/middleware"
)

// Options configures the router. Zero values are usable.
type Options struct {
	AllowedOrigins []string
	MaxTextChars   int
	RateLimiter    *middleware.RateLimiter
	HealthCheckers map[string]middleware.HealthChecker
	Log            logrus.FieldLogger
}

type Router struct {
	aiSvc    *appai.Service
	maxChars int
	log      logrus.FieldLogger
}

func NewRouter(aiSvc *appai.Service, opts Options) http.Handler {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	r := &Router{aiSvc: aiSvc, maxChars: opts.MaxTextChars, log: opts.Log}

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	mux.Use(httpLogger.Logger("router", opts.Log))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Analysis-ID"},
		MaxAge:         300,
	}))

	mux.Get("/", middleware.StatusHandler)
	mux.Get("/health", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Group(func(rt chi.Router) {
		if opts.RateLimiter != nil {
			rt.Use(middleware.RateLimitMiddleware(opts.RateLimiter))
		}
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var verr *middleware.ValidationError
			switch {
			case errors.As(err, &verr):
				middleware.WriteJSONError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, domai.ErrEmptyText):
				middleware.WriteJSONError(w, http.StatusBadRequest, middleware.MsgNoText)
			case errors.Is(err, domai.ErrQuotaExceeded):
				middleware.WriteJSONError(w, http.StatusTooManyRequests, "ai quota exceeded")
			case errors.Is(err, context.Canceled):
				// client went away; nobody reads the body
				w.WriteHeader(499)
			default:
				middleware.WriteJSONError(w, http.StatusInternalServerError, err.Error())
			}
		}
	}
}

// POST /analyze
// Body: {"text": "<text>"}
// Answers {"result": "Flags: ...\nExplanation: ...\nConfidence: ..."}.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	body, err := middleware.DecodeAnalyzeBody(req, r.maxChars)
	if err != nil {
		return err
	}

	done := middleware.TrackAnalysis()
	a, err := r.aiSvc.Analyze(req.Context(), body.Text)
	done()
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Analysis-ID", string(a.ID))
	return json.NewEncoder(w).Encode(map[string]string{"result": a.Result})
}
