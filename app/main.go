package main

import (
	"log"
	"net/http"
	"time"

	"uptimestatus/app/internal/cache"
	"uptimestatus/app/internal/config"
	"uptimestatus/app/internal/fetcher"
	"uptimestatus/app/internal/handlers"
	"uptimestatus/app/internal/journal"
	"uptimestatus/app/internal/ratelimit"
	"uptimestatus/app/internal/security"
	"uptimestatus/app/internal/uptimerobot"
)

func main() {
	// Load configuration from environment (and optional YAML credential file)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(cfg.Credentials) == 0 {
		log.Println("Warning: no UptimeRobot API key configured, every fetch will fail until one is set")
	}

	// Open the fetch journal (optional)
	var jnl *journal.Journal
	if cfg.JournalDBPath != "" {
		jnl, err = journal.Open(cfg.JournalDBPath)
		if err != nil {
			log.Printf("Warning: fetch journal disabled: %v", err)
			jnl = nil
		} else {
			defer jnl.Close()
		}
	}

	// Upstream client and per-credential fetch service
	client := uptimerobot.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout)
	svc := fetcher.New(client, cfg.Credentials, cfg.PartialResults, jnl)

	// Response cache and per-IP rate limiter
	c := cache.New(cfg.CacheTime)
	limiter := ratelimit.New(ratelimit.Config{
		PerMinute:    cfg.RateLimit,
		ErrorMessage: "请求过于频繁，请稍后再试",
	})

	// Setup HTTP routes
	routes := handlers.SetupRoutes(cfg, svc, c, limiter, jnl)

	// Wrap with security middleware
	handler := security.SecureHeaders(routes)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Server starting on port %s (credentials=%d, cache=%v, rate limit=%s)",
		cfg.Port, len(cfg.Credentials), cfg.CacheTime, limiter.String())
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
