package observe

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/button-smasher/internal/config"
)

// RouterConfig contains the dependencies of the HTTP router.
type RouterConfig struct {
	Hub     *Hub
	Metrics *Metrics
	Observe config.ObserveConfig
	Logger  *log.Logger
}

type handlers struct {
	hub      *Hub
	metrics  *Metrics
	origins  []string
	interval time.Duration
	upgrades *rate.Limiter
	logger   *log.Logger
}

// NewRouter builds the router. It starts no goroutines and opens no
// listeners, so it can be served by httptest directly.
func NewRouter(cfg RouterConfig) *chi.Mux {
	if cfg.Hub == nil {
		cfg.Hub = NewHub()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	interval := cfg.Observe.StreamInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	burst := cfg.Observe.UpgradeBurst
	if burst < 1 {
		burst = 1
	}

	h := &handlers{
		hub:      cfg.Hub,
		metrics:  cfg.Metrics,
		origins:  cfg.Observe.AllowedOrigins,
		interval: interval,
		upgrades: rate.NewLimiter(rate.Limit(cfg.Observe.UpgradesPerSecond), burst),
		logger:   cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Observe.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/session", h.handleLatest)
		r.Get("/sessions", h.handleSessions)
		r.Get("/sessions/{id}", h.handleSession)
	})
	r.Get("/ws", h.handleWS)

	return r
}

func (h *handlers) handleLatest(w http.ResponseWriter, _ *http.Request) {
	view, ok := h.hub.Latest()
	if !ok {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) handleSessions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.hub.Sessions())
}

func (h *handlers) handleSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, ok := h.hub.Session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	writeJSON(w, http.StatusOK, SessionView{ID: id, Snapshot: s})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start))
		})
	}
}

// originAllowed matches an Origin header against patterns that may contain
// a single "*" wildcard. Requests without an Origin are not from browsers
// and are allowed.
func originAllowed(origin string, patterns []string) bool {
	if origin == "" {
		return true
	}
	origin = strings.ToLower(origin)
	for _, p := range patterns {
		p = strings.ToLower(p)
		if p == "*" || p == origin {
			return true
		}
		prefix, suffix, ok := strings.Cut(p, "*")
		if !ok {
			continue
		}
		if len(origin) >= len(prefix)+len(suffix) &&
			strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}
