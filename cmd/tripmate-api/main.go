// README: Entry point; loads config, wires the LLM provider and history store, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripmate/internal/ai"
	"tripmate/internal/config"
	httptransport "tripmate/internal/http"
	"tripmate/internal/http/handlers"
	"tripmate/internal/infra"
	"tripmate/internal/maps"
	"tripmate/internal/modules/history"
	"tripmate/internal/modules/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, closeProvider, err := ai.NewProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("ai provider init: %v", err)
	}
	defer closeProvider()

	store, closeStore, err := infra.NewHistoryStore(ctx, cfg)
	if err != nil {
		log.Fatalf("history store init: %v", err)
	}
	defer closeStore()

	var lookup handlers.DestinationLookup
	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		lookup = geocoder
	} else {
		log.Printf("TRIPMATE_MAPS_API_KEY not set; destination lookup disabled")
	}

	srv := httptransport.NewServer(httptransport.ServerDeps{
		Planner:         planner.NewService(provider),
		History:         history.NewService(store),
		Destinations:    lookup,
		GenerateTimeout: cfg.AI.GenerateTimeout,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		HistoryBackend:  cfg.History.Backend,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("tripmate listening on %s (model %s)", cfg.HTTP.Addr, provider.Model())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
