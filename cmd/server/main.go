package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"graphql-bff-api/internal/auth"
	"graphql-bff-api/internal/cache"
	"graphql-bff-api/internal/config"
	"graphql-bff-api/internal/graph"
	"graphql-bff-api/internal/handlers"
	"graphql-bff-api/internal/logging"
	"graphql-bff-api/internal/routes"
	"graphql-bff-api/internal/store"
)

const redisPingTimeout = 5 * time.Second

func main() {
	cfg := config.Load()

	log, closeSinks := logging.New(logging.Options{
		Dir:        cfg.LogDir,
		Production: cfg.Production(),
	})
	defer closeSinks()

	// Source-of-truth backing for the resolver.
	var userStore store.UserStore
	switch cfg.UserStore {
	case "sqlite":
		s, err := store.NewSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open user store")
		}
		userStore = s
	default:
		userStore = store.NewMemory()
	}

	// Cache strategy is fixed once for the process lifetime. With Redis
	// disabled no backing-store connection is ever attempted.
	var cacheStrategy cache.Cache = cache.NewNull()
	if cfg.EnableRedis {
		redisCache, err := cache.NewRedis(cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Str("url", cfg.RedisURL).Msg("invalid redis configuration")
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err = redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Str("url", cfg.RedisURL).Msg("redis is unreachable")
		}
		defer redisCache.Close()
		cacheStrategy = redisCache
		log.Info().Str("url", cfg.RedisURL).Msg("redis cache enabled")
	} else {
		log.Info().Msg("cache disabled, every lookup hits the user store")
	}

	resolver := graph.NewResolver(cacheStrategy, userStore, log, cfg.CacheTTL)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build graphql schema")
	}

	engine := routes.Setup(routes.Deps{
		Cfg:     cfg,
		Log:     log,
		GraphQL: handlers.NewGraphQL(schema, log),
		Tokens:  auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	stop()

	// Stop accepting new connections and drain in-flight requests within
	// the grace period; a hung drain is cut off rather than waited out.
	log.Info().Dur("grace", cfg.ShutdownGrace).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown incomplete, closing")
		_ = srv.Close()
	}
	log.Info().Msg("server stopped")
}
