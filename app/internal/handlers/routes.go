package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"uptimestatus/app/internal/cache"
	"uptimestatus/app/internal/config"
	"uptimestatus/app/internal/fetcher"
	"uptimestatus/app/internal/journal"
	"uptimestatus/app/internal/ratelimit"
	"uptimestatus/app/internal/security"
)

// SetupRoutes wires the public gateway surface. OPTIONS requests are
// answered before routing so preflights work on every path.
func SetupRoutes(cfg *config.Config, svc *fetcher.Service, c *cache.Cache, limiter *ratelimit.Limiter, jnl *journal.Journal) http.Handler {
	cors := security.CORSPolicy{AllowedOrigins: cfg.AllowedOrigins}
	keys := security.APIKeyPolicy{
		Require:     cfg.RequireAPIKey,
		AllowedKeys: cfg.AllowedAPIKeys,
	}
	started := time.Now()

	r := mux.NewRouter()
	r.Handle("/", CORSOnly(cors)(HandleDocs(cfg))).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(Gate(cors, limiter, keys))
	api.Handle("/monitors", HandleMonitors(cfg, c, svc)).Methods(http.MethodGet)
	api.Handle("/stats", HandleStats(cfg, c, svc)).Methods(http.MethodGet)
	api.Handle("/incidents", HandleIncidents(cfg, c, svc)).Methods(http.MethodGet)
	api.Handle("/health", HandleHealth(cfg, limiter, jnl, started)).Methods(http.MethodGet)

	r.NotFoundHandler = CORSOnly(cors)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "未找到端点")
	}))
	r.MethodNotAllowedHandler = CORSOnly(cors)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "方法不允许")
	}))

	preflight := HandlePreflight(cors)
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodOptions {
			preflight(w, req)
			return
		}
		r.ServeHTTP(w, req)
	})
}
