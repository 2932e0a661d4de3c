package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"datenight/internal/cache"
	"datenight/internal/community"
	"datenight/internal/config"
	"datenight/internal/explore"
	"datenight/internal/location"
	appLog "datenight/internal/log"
	"datenight/internal/saved"
	"datenight/internal/ticketing"
	"datenight/internal/web"
)

type flagConfig struct {
	configPath string
	listen     string
	once       bool
	seed       bool
}

func main() {
	flags := parseFlags()

	// Env first: the API key never lives in the config file.
	if err := godotenv.Load(); err != nil {
		appLog.Debug("no .env file found")
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))

	apiKey := os.Getenv(conf.Ticketing.APIKeyEnv)
	if apiKey == "" {
		appLog.Info("no ticketing API key set; upstream fetches will fail over to curated events",
			"env", conf.Ticketing.APIKeyEnv)
	}

	appLog.Info("datenight starting",
		"listen", conf.Listen,
		"timezone", conf.Timezone,
		"radius_miles", conf.RadiusMiles,
		"cache_ttl_minutes", conf.CacheTTLMinutes,
		"refresh", conf.RefreshCron,
		"once", flags.once,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	// Explicit construction, no package-level singletons: every
	// component gets its collaborators handed to it.
	store := cache.New(conf.CacheTTL())
	tickets := ticketing.New(ticketing.Config{
		BaseURL: conf.Ticketing.BaseURL,
		APIKey:  apiKey,
	}, store)

	communitySvc := community.NewService(community.NewMemoryStore(), conf.Location())
	if flags.seed {
		if err := communitySvc.Seed(ctx); err != nil {
			appLog.Error("community seed failed", err)
		}
	}

	savedSvc := saved.NewService(saved.NewMemoryStore())

	vm := explore.New(tickets, communitySvc, savedSvc, explore.Options{
		CoupleID: conf.CoupleID,
		UserID:   "local",
		Radius:   conf.RadiusMiles,
		PageSize: conf.PageSize,
		Location: location.Static{Lat: conf.DefaultLatitude, Lon: conf.DefaultLongitude},
		Calendar: conf.Location(),
	})

	appLog.Info("initial load starting")
	vm.Load(ctx)
	appLog.Info("initial load finished")

	if flags.once {
		snapshot := vm.Snapshot()
		appLog.Info("one-shot complete",
			"featured", len(snapshot.Featured.Events),
			"community", len(snapshot.Community.Events),
		)
		return
	}

	// Background cache re-warm on the configured schedule.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(conf.RefreshCron, func() {
		appLog.Info("scheduled refresh starting")
		vm.Refresh(ctx)
	}); err != nil {
		appLog.Error("invalid refresh schedule", err, "refresh", conf.RefreshCron)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    conf.Listen,
		Handler: web.NewServer(conf, vm, communitySvc).Handler(),
	}
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+conf.Listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Error("HTTP server failed", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("HTTP server shutdown failed", err)
	}
	appLog.Info("datenight exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "datenight.yaml", "Path to config file")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.BoolVar(&cfg.once, "once", false, "Run one load cycle, log a summary and exit")
	flag.BoolVar(&cfg.seed, "seed", true, "Seed sample community events into an empty store")

	flag.Parse()

	return cfg
}
