package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/http/middleware"
	"fyyur/internal/httpapi"
	"fyyur/internal/store"
	"fyyur/internal/store/memory"
)

// directoryStore is implemented by both the Postgres and the in-memory store.
type directoryStore interface {
	venues.Store
	artists.Store
	shows.Store
}

var (
	_ directoryStore = (*store.Store)(nil)
	_ directoryStore = (*memory.Store)(nil)
)

// openDataStore selects the backend named by cfg.Store. The returned func
// releases its resources.
func openDataStore(ctx context.Context, cfg Config) (directoryStore, func(), error) {
	if cfg.Store == storeMemory {
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return memory.New(), func() {}, nil
	}

	db, err := openDatabase(ctx, driverPgx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return store.New(db), func() { _ = db.Close() }, nil
}

func newHTTPHandler(cfg Config, ds directoryStore) http.Handler {
	venueSvc := venues.New(ds, time.Now)
	artistSvc := artists.New(ds, time.Now)
	showSvc := shows.New(ds)

	routes := httpapi.New(venueSvc, artistSvc, showSvc).Routes()

	handler := middleware.CORS(cfg.AllowedOrigins)(routes)
	return middleware.RequestLogging()(handler)
}

func serve(ctx context.Context, cfg Config) error {
	if cfg.Store == storePostgres {
		version, dirty, err := schemaVersion(ctx, cfg)
		if err != nil {
			return err
		}
		if dirty {
			return fmt.Errorf("schema version %d is dirty, fix it before serving", version)
		}
		if version == 0 {
			log.Warn().Msg("no migrations applied, run `fyyur migrate up`")
		}
	}

	ds, closeStore, err := openDataStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedDemo {
		if err := seedDemoData(ctx, ds); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHTTPHandler(cfg, ds),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("store", cfg.Store).Msg("fyyur listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
