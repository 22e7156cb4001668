package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/config"
	"github.com/majorsys/mnemo/internal/db"
	dbRedis "github.com/majorsys/mnemo/internal/db/redis"
	"github.com/majorsys/mnemo/internal/domain"
	"github.com/majorsys/mnemo/internal/index"
	logpkg "github.com/majorsys/mnemo/internal/logger"
	"github.com/majorsys/mnemo/internal/metrics"
	lexiconrepo "github.com/majorsys/mnemo/internal/repository/lexicon"
	"github.com/majorsys/mnemo/internal/repository/tagcache"
	"github.com/majorsys/mnemo/internal/repository/wordlist"
	"github.com/majorsys/mnemo/internal/transport/httpapi"
	openaiTag "github.com/majorsys/mnemo/internal/transport/openai"
	healthuc "github.com/majorsys/mnemo/internal/usecase/health"
	phraseuc "github.com/majorsys/mnemo/internal/usecase/phrase"
	statsuc "github.com/majorsys/mnemo/internal/usecase/stats"
	tagginguc "github.com/majorsys/mnemo/internal/usecase/tagging"
	"github.com/majorsys/mnemo/internal/version"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the mnemo HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting mnemo API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	ctx := context.Background()

	// Optional tag cache store
	var store db.Store
	if len(cfg.Cache.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			return fmt.Errorf("create cache store: %w", err)
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			return fmt.Errorf("cache store not ready: %w", err)
		}
		logger.Info("Connected to cache store", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Register metrics explicitly (no init())
	metrics.RegisterPhraseMetrics()
	metrics.RegisterTaggingMetrics()

	var tagger domain.Tagger
	if cfg.Tagging.APIKey != "" {
		tagger = buildTagger(cfg, store, logger)
	}

	ix, err := buildIndex(ctx, cfg, tagger, logger)
	if err != nil {
		return fmt.Errorf("build word index: %w", err)
	}
	metrics.IndexedWords.Set(float64(ix.Size()))
	metrics.DroppedWords.Set(float64(ix.Dropped()))
	logger.Info("Word index built",
		zap.Int("words", ix.Size()),
		zap.Int("fillers", len(ix.Fillers())),
		zap.Int("dropped", ix.Dropped()),
	)

	phraseSvc := phraseuc.New(ix).WithMaxGroupLen(cfg.Phrase.MaxGroupLen)
	statsSvc := statsuc.New(ix)

	// Pass nil interfaces (not typed nil pointers) for unwired collaborators.
	var pinger db.Pinger
	if store != nil {
		pinger = store
	}
	var taggerChecker domain.HealthChecker
	if hc, ok := tagger.(domain.HealthChecker); ok {
		taggerChecker = hc
	}
	healthSvc := healthuc.New(ix, pinger, taggerChecker)

	server := httpapi.NewServer(phraseSvc, statsSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(httpapi.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// buildIndex assembles the word index. With a tagger configured the raw
// word list is fetched and tagged; otherwise the pre-tagged lexicon file
// is loaded from disk.
func buildIndex(
	ctx context.Context,
	cfg config.Config,
	tagger domain.Tagger,
	logger *zap.Logger,
) (*index.Index, error) {
	if tagger == nil {
		words, err := lexiconrepo.Load(cfg.Phrase.LexiconPath, logger)
		if err != nil {
			return nil, err
		}
		return index.Build(words), nil
	}

	var cache *wordlist.FileCache
	if cfg.WordList.CachePath != "" {
		cache = wordlist.NewFileCache(cfg.WordList.CachePath, logger)
	}
	fetcher := wordlist.NewFetcher(cfg.WordList.URL, cfg.WordList.MaxWords, logger)
	raw, err := wordlist.NewLoader(cache, fetcher, logger).Load(ctx)
	if err != nil {
		return nil, err
	}

	tagged, err := tagginguc.New(tagger, logger).
		WithBatchSize(cfg.Tagging.BatchSize).
		TagWords(ctx, raw)
	if err != nil {
		return nil, err
	}

	return index.Build(tagged), nil
}

// buildTagger assembles the tagger chain: OpenAI -> Cached.
func buildTagger(cfg config.Config, store db.Store, logger *zap.Logger) domain.Tagger {
	base := openaiTag.NewTagger(&openaiTag.Config{
		APIKey:   cfg.Tagging.APIKey,
		BaseURL:  cfg.Tagging.BaseURL,
		Model:    cfg.Tagging.Model,
		Provider: cfg.Tagging.Provider,
		Logger:   logger,
	})

	if store == nil {
		return base
	}
	return tagcache.New(base, store, metrics.TagCacheTotal, logger).
		WithTTL(time.Duration(cfg.Cache.TagTTLSec) * time.Second)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
