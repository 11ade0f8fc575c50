// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wut2pack/internal/ai"
	"wut2pack/internal/config"
	httptransport "wut2pack/internal/http"
	"wut2pack/internal/infra"
	"wut2pack/internal/maps"
	"wut2pack/internal/modules/list"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	notifier := list.NewRedisNotifier(redisClient)
	listStore := list.NewStore(dbPool)
	listSvc := list.NewService(listStore, notifier)

	var citySvc *maps.CityService
	if cfg.Maps.APIKey != "" {
		citySvc, err = maps.NewCityService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Print("GOOGLE_MAPS_API_KEY not set; city search disabled")
	}

	var tipsProvider *ai.GeminiProvider
	if cfg.AI.GeminiKey != "" {
		tipsProvider, err = ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer tipsProvider.Close()
	} else {
		log.Print("GEMINI_API_KEY not set; AI tips disabled")
	}

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Lists:    listSvc,
		Notifier: notifier,
		Cities:   citySvc,
		Tips:     tipsProvider,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
