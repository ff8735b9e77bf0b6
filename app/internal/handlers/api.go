package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"uptimestatus/app/internal/cache"
	"uptimestatus/app/internal/config"
	"uptimestatus/app/internal/fetcher"
	"uptimestatus/app/internal/journal"
	"uptimestatus/app/internal/models"
	"uptimestatus/app/internal/ratelimit"
	"uptimestatus/app/internal/stats"
)

// requestDays reads and clamps the days query parameter
func requestDays(cfg *config.Config, r *http.Request) int {
	days := 0
	if q := r.URL.Query().Get("days"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			days = n
		}
	}
	return cfg.ClampDays(days)
}

// getResult serves the window's result from cache or runs a fetch cycle.
// A failed fetch leaves any stale cache entry untouched for the next
// successful refresh.
func getResult(c *cache.Cache, svc *fetcher.Service, r *http.Request, days int) (*fetcher.Result, error) {
	key := fmt.Sprintf("monitors:%d", days)
	if v, ok := c.Get(key); ok {
		return v.(*fetcher.Result), nil
	}

	result, err := svc.Fetch(r.Context(), days)
	if err != nil {
		return nil, err
	}
	c.Set(key, result)
	return result, nil
}

func serveFromResult(cfg *config.Config, c *cache.Cache, svc *fetcher.Service, pick func(*fetcher.Result) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := requestDays(cfg, r)

		result, err := getResult(c, svc, r, days)
		if err != nil {
			log.Printf("fetch failed (days=%d): %v", days, err)
			writeJSON(w, http.StatusInternalServerError, models.ErrAt(err.Error(), nowMs()))
			return
		}

		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cfg.CacheTime.Seconds())))
		envelope := models.OK(pick(result), nowMs())
		if len(result.Errors) > 0 {
			envelope.Errors = result.Errors
		}
		writeJSON(w, http.StatusOK, envelope)
	}
}

// HandleMonitors returns the aggregated monitor list for a window
func HandleMonitors(cfg *config.Config, c *cache.Cache, svc *fetcher.Service) http.HandlerFunc {
	return serveFromResult(cfg, c, svc, func(res *fetcher.Result) any {
		return res.Monitors
	})
}

// HandleStats returns global statistics over the merged monitor set
func HandleStats(cfg *config.Config, c *cache.Cache, svc *fetcher.Service) http.HandlerFunc {
	return serveFromResult(cfg, c, svc, func(res *fetcher.Result) any {
		return res.Stats
	})
}

// HandleIncidents returns the most recent down events across all monitors
func HandleIncidents(cfg *config.Config, c *cache.Cache, svc *fetcher.Service) http.HandlerFunc {
	return serveFromResult(cfg, c, svc, func(res *fetcher.Result) any {
		return stats.Incidents(res.Monitors, 0)
	})
}

// HandleHealth reports gateway status and recent fetch activity
func HandleHealth(cfg *config.Config, limiter *ratelimit.Limiter, jnl *journal.Journal, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := models.Health{
			Status:        "ok",
			UptimeSeconds: int64(time.Since(started).Seconds()),
			Credentials:   len(cfg.Credentials),
			CacheTTLSecs:  int64(cfg.CacheTime.Seconds()),
			RateLimit:     limiter.String(),
		}
		if recent, err := jnl.Recent(10); err == nil && recent != nil {
			health.RecentFetches = recent
		}
		writeJSON(w, http.StatusOK, models.OK(health, nowMs()))
	}
}
