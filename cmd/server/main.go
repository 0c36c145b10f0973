// Command server runs the personalization profile service: the quiz compiler
// behind its HTTP surface, with PostgreSQL (or in-memory) persistence, a Redis
// read-through cache, and Kafka events for the risk-analysis engine.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"clauseguard/internal/jwtauth"
	"clauseguard/internal/platform/config"
	"clauseguard/internal/platform/httpserver"
	"clauseguard/internal/platform/logger"
	platformredis "clauseguard/internal/platform/redis"
	"clauseguard/internal/profile/cache"
	"clauseguard/internal/profile/compiler"
	"clauseguard/internal/profile/events"
	"clauseguard/internal/profile/handler"
	"clauseguard/internal/profile/metrics"
	"clauseguard/internal/profile/service"
	"clauseguard/internal/profile/store"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal/profile packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	weights, err := compiler.Load(cfg.WeightsPath)
	if err != nil {
		log.Error("failed to load weight table", "path", cfg.WeightsPath, "error", err)
		os.Exit(1)
	}

	var profileStore service.Store
	if cfg.PostgresDSN != "" {
		db, err := store.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := store.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("failed to ensure schema", "error", err)
			os.Exit(1)
		}
		profileStore = pg
	} else {
		log.Warn("no postgres DSN configured, using in-memory store")
		profileStore = store.NewInMemory()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	var cacheClient *cache.ProfileCache
	if redisClient != nil {
		defer redisClient.Close()
		cacheClient = cache.New(redisClient.Client, cfg.CacheTTL)
	} else {
		log.Warn("no redis URL configured, profile cache disabled")
		cacheClient = cache.New(nil, cfg.CacheTTL)
	}

	publisher, err := events.New(ctx, cfg.KafkaBrokers, events.WithLogger(log))
	if err != nil {
		log.Error("failed to connect to kafka", "error", err)
		os.Exit(1)
	}
	var sink service.EventSink
	if publisher != nil {
		defer publisher.Close()
		sink = publisher
	} else {
		log.Warn("no kafka brokers configured, profile events disabled")
	}

	m := metrics.New()
	profiles := service.New(profileStore, cacheClient, sink, weights, m, log)
	verifier := jwtauth.NewVerifier(cfg.JWTSigningKey)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	handler.New(profiles, log, verifier, cfg.ServiceKeyHash).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting clauseguard profile service",
		"addr", cfg.Addr,
		"weights_version", weights.Version,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
