package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelplanner/cache"
	"travelplanner/config"
	"travelplanner/database"
	"travelplanner/handlers"
	"travelplanner/logger"
	"travelplanner/services"
)

func main() {
	initDB := flag.Bool("init-db", false, "recreate and seed the sample tables, then exit")
	flag.Parse()

	if err := run(*initDB); err != nil {
		fmt.Fprintf(os.Stderr, "travelplanner: %v\n", err)
		os.Exit(1)
	}
}

func run(initDB bool) error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	defer log.Sync()

	for _, key := range cfg.Missing() {
		log.Warn("Environment variable not set", logger.String("key", key))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if initDB {
		return store.InitSampleData(ctx, time.Now())
	}

	has, err := store.HasSampleData(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect sample data: %w", err)
	}
	if !has {
		if err := store.InitSampleData(ctx, time.Now()); err != nil {
			return err
		}
	}

	responseCache, closeCache := newCache(ctx, cfg, store, log)
	defer closeCache()

	amadeus := services.NewAmadeusClient(cfg, responseCache, log)
	gemini := services.NewGeminiClient(cfg, log)
	assistant := services.NewAssistant(amadeus, amadeus, gemini, log)

	h := handlers.NewHandler(amadeus, assistant, store, cfg, log)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handlers.NewRouter(cfg, h, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Travel planner starting", logger.String("port", cfg.Server.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// newCache picks Redis when REDIS_ADDR is set and the api_cache table
// otherwise. A zero TTL turns caching off.
func newCache(ctx context.Context, cfg *config.Config, store *database.Store, log *logger.Logger) (services.Cache, func()) {
	if cfg.Cache.TTL() <= 0 {
		log.Info("Response cache disabled")
		return nil, func() {}
	}

	if cfg.Cache.RedisAddr != "" {
		rc := cache.NewRedisCache(cfg.Cache)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn("Redis unavailable, using database cache",
				logger.String("addr", cfg.Cache.RedisAddr), logger.Error(err))
			rc.Close()
		} else {
			log.Info("Using Redis response cache", logger.String("addr", cfg.Cache.RedisAddr))
			return rc, func() { rc.Close() }
		}
	}

	apiCache := database.NewAPICache(store)
	go apiCache.PurgeLoop(ctx, time.Hour, log.Named("api-cache"))
	return apiCache, func() {}
}
