// Package server exposes jsfmt.Format over HTTP. Its route handling
// follows phpgo_server.go's dev-server shape (one handler per path,
// ListenAndServe in main), upgraded from net/http.HandleFunc's bare
// string-prefix dispatch to a gorilla/mux router; logging moves from
// the teacher's banner-style fmt.Printf to sirupsen/logrus structured
// entries, and request counts are exported through
// prometheus/client_golang, following distribution-distribution's
// registry server idiom.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/alexisbouchez/jsbeautify/history"
	"github.com/alexisbouchez/jsbeautify/jsfmt"
)

// HistoryRecorder is the subset of *history.Store the server depends
// on, so tests can supply a fake without a real MySQL connection.
type HistoryRecorder interface {
	Record(ctx context.Context, r history.Record) error
}

// Config configures a Server.
type Config struct {
	Log     *logrus.Logger // defaults to logrus.StandardLogger()
	History HistoryRecorder // optional; nil disables history recording
}

// Server is the format-as-a-service HTTP API described in SPEC_FULL.md
// §4.7.
type Server struct {
	router  *mux.Router
	log     *logrus.Logger
	history HistoryRecorder

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New builds a Server with its routes registered.
func New(cfg Config) *Server {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	s := &Server{
		router:  mux.NewRouter(),
		log:     log,
		history: cfg.History,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jsbeautify_requests_total",
			Help: "Total HTTP requests served, labeled by route and status.",
		}, []string{"route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "jsbeautify_request_duration_seconds",
			Help: "HTTP request duration in seconds, labeled by route.",
		}, []string{"route"}),
	}

	s.router.HandleFunc("/format", s.handleFormat).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router.Use(s.loggingMiddleware)

	return s
}

// ServeHTTP lets *Server be passed directly to http.ListenAndServe, the
// way phpgo_server.go passes its top-level handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// FormatRequest is the POST /format request body.
type FormatRequest struct {
	Source  string         `json:"source"`
	Options map[string]any `json:"options"`
}

// FormatResponse is the POST /format response body.
type FormatResponse struct {
	Output          string `json:"output"`
	AddedScriptTags bool   `json:"added_script_tags"`
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	opts := jsfmt.FromMap(req.Options)
	hadTags := strings.Contains(req.Source, `<script type="text/javascript">`) && strings.Contains(req.Source, `</script>`)
	output := jsfmt.Format(req.Source, opts)

	resp := FormatResponse{
		Output:          output,
		AddedScriptTags: hadTags,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.WithError(err).Warn("failed to encode format response")
	}

	s.recordHistory(r.Context(), req, output, time.Since(start))
}

func (s *Server) recordHistory(ctx context.Context, req FormatRequest, output string, dur time.Duration) {
	if s.history == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := jsfmt.FromMap(req.Options)
	record := history.Record{
		RequestedAt: time.Now(),
		InputLen:    len(req.Source),
		OutputLen:   len(output),
		Duration:    dur,
		IndentSize:  opts.IndentSize,
		IndentChar:  opts.IndentChar,
	}

	if err := s.history.Record(ctx, record); err != nil {
		// History is an observability nicety, never part of the
		// formatting contract: log and move on.
		s.log.WithError(err).Warn("failed to record format history")
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		dur := time.Since(start)
		route := r.URL.Path
		s.requestsTotal.WithLabelValues(route, http.StatusText(rec.status)).Inc()
		s.requestDuration.WithLabelValues(route).Observe(dur.Seconds())

		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     route,
			"status":   rec.status,
			"duration": dur,
		}).Info("served request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
