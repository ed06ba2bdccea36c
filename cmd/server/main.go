package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamereviews/internal/config"
	"gamereviews/internal/handler"
	"gamereviews/internal/hub"
	"gamereviews/internal/loader"
	"gamereviews/internal/logging"
	"gamereviews/internal/repository/sqlstore"
	"gamereviews/internal/service"
	"gamereviews/internal/watcher"
)

func main() {
	// Command line flags override the config file and environment
	configPath := flag.String("config", "", "Config file path (default: search standard locations)")
	addr := flag.String("addr", "", "HTTP listen address")
	seed := flag.String("seed", "", "Reset the store from a fixture name or dataset file")
	flag.Parse()

	cfg, usedPath, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *seed != "" {
		cfg.Database.Seed = *seed
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})
	log := logging.WithComponent("server")

	if usedPath != "" {
		log.Info().Str("path", usedPath).Msg("Configuration loaded")
	} else {
		log.Info().Msg("No config file found, using defaults and environment")
	}

	store, err := sqlstore.New(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to open database")
	}
	defer store.Close()
	log.Info().Str("driver", store.Driver()).Msg("Database opened")

	if cfg.Database.Seed != "" {
		if err := seedStore(context.Background(), store, cfg.Database.Seed); err != nil {
			log.Fatal().Err(err).Str("seed", cfg.Database.Seed).Msg("Failed to seed database")
		}
		log.Info().Str("seed", cfg.Database.Seed).Msg("Database seeded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Event bus feeds the SSE hub
	eventBus := service.NewEventBus()
	sseHub := hub.New()
	go sseHub.Run(ctx)
	go sseHub.Relay(ctx, eventBus)

	if cfg.Database.Watch {
		watchSeed(ctx, store, eventBus, cfg.Database.Seed)
	}

	reviewSvc := service.NewReviewService(store, eventBus)
	router := handler.NewRouter(handler.NewReviewHandler(reviewSvc), handler.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Events:         sseHub,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case err := <-serverErr:
		log.Error().Err(err).Msg("Server error")
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Server stopped")
}

// seedStore resets the store from a fixture name or dataset file
func seedStore(ctx context.Context, store *sqlstore.Store, source string) error {
	ds, err := loader.Load(source)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return store.Seed(ctx, ds)
}

// watchSeed reseeds the store whenever the seed file changes. A dataset that
// fails to load or validate leaves the current data in place.
func watchSeed(ctx context.Context, store *sqlstore.Store, bus *service.EventBus, source string) {
	log := logging.WithComponent("server")
	if source == "" || loader.IsFixtureName(source) {
		log.Warn().Str("seed", source).Msg("database.watch needs a seed file, not watching")
		return
	}

	w := watcher.New(source, func(ctx context.Context) {
		if err := seedStore(ctx, store, source); err != nil {
			log.Error().Err(err).Str("seed", source).Msg("Failed to reload dataset")
			return
		}
		log.Info().Str("seed", source).Msg("Dataset reloaded")
		bus.Publish(service.Event{
			Type:    service.EventDatasetReloaded,
			Payload: map[string]string{"source": source},
		})
	})

	go func() {
		if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("seed", source).Msg("Seed watcher stopped")
		}
	}()
}
