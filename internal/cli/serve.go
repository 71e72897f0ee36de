package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/venndial/venndial/pkg/analysis"
	"github.com/venndial/venndial/pkg/cache"
	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/history"
	vio "github.com/venndial/venndial/pkg/io"
	"github.com/venndial/venndial/pkg/pipeline"
	"github.com/venndial/venndial/pkg/search"
)

// serveCommand creates the serve command exposing analysis and search
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		mongoURI  string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve analysis and search over HTTP",
		Long: `Serve analysis and search over HTTP.

Endpoints:

  POST /analyze     measure a configuration (JSON config in the body)
  POST /search      run a search (JSON target plus options in the body)
  GET  /runs        list stored runs, best fitness first
  GET  /runs/{id}   fetch one stored run
  GET  /healthz     liveness probe

Completed searches are stored in the run history: in memory by default,
or in MongoDB with --mongo-uri. With --redis the analysis cache is
shared across instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, mongoURI, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared analysis cache")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for a durable run history")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache, history store, and router, then serves until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr, mongoURI string, noCache bool) error {
	cch, err := c.serveCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	runner := pipeline.NewRunner(cch, nil, c.Logger)
	defer runner.Close()

	var store history.Store
	if mongoURI != "" {
		store, err = history.NewMongoStore(ctx, history.MongoConfig{URI: mongoURI})
		if err != nil {
			return fmt.Errorf("connect history store: %w", err)
		}
	} else {
		store = history.NewMemoryStore()
	}
	defer store.Close(context.Background())

	srv := &server{runner: runner, store: store, cli: c}
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serveCache picks the cache backend for serve mode.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	}
	return newCache(false)
}

// server holds the HTTP handler dependencies.
type server struct {
	runner *pipeline.Runner
	store  history.Store
	cli    *CLI
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Get("/healthz", s.handleHealth)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/search", s.handleSearch)
	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{id}", s.handleGetRun)

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analyzeResponse is the body returned by POST /analyze.
type analyzeResponse struct {
	Cached  bool             `json:"cached"`
	Metrics analysis.Metrics `json:"metrics"`
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var cfg diagram.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode config: %w", err))
		return
	}

	metrics, cached, err := s.runner.Analyze(r.Context(), cfg)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Cached: cached, Metrics: metrics})
}

// searchRequest is the body accepted by POST /search.
type searchRequest struct {
	Target     diagram.Target  `json:"target"`
	Base       *diagram.Config `json:"base,omitempty"`
	Bounds     *search.Bounds  `json:"bounds,omitempty"`
	Iterations int             `json:"iterations,omitempty"`
	Seed       uint64          `json:"seed,omitempty"`
}

// searchResponse is the body returned by POST /search.
type searchResponse struct {
	Found      bool              `json:"found"`
	Result     *vio.ResultRecord `json:"result,omitempty"`
	Iterations int               `json:"iterations"`
	DurationMS int64             `json:"duration_ms"`
	CacheHits  int               `json:"cache_hits"`
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	opts := pipeline.Options{
		Iterations: req.Iterations,
		Seed:       req.Seed,
		Logger:     s.cli.Logger,
	}
	if req.Base != nil {
		opts.Base = *req.Base
	}
	if req.Bounds != nil {
		opts.Bounds = *req.Bounds
	}

	result, err := s.runner.Search(r.Context(), req.Target, opts)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	resp := searchResponse{
		Found:      result.HasBest,
		Iterations: result.Stats.Iterations,
		DurationMS: result.Stats.Duration.Milliseconds(),
		CacheHits:  result.Stats.CacheHits,
	}
	if result.HasBest {
		rec := vio.NewRecord(result.Best, req.Seed)
		resp.Result = &rec
		if err := s.store.Put(r.Context(), rec); err != nil {
			s.cli.Logger.Warn("history store failed", "run_id", rec.RunID, "err", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if q := r.URL.Query().Get("limit"); q != "" {
		if _, err := fmt.Sscanf(q, "%d", &limit); err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", q))
			return
		}
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, history.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("run %s not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
