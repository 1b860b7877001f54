package api

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/FACorreiaa/docledger/internal/api/respond"
	"github.com/FACorreiaa/docledger/internal/domain/auth"
	extractionhandler "github.com/FACorreiaa/docledger/internal/domain/extraction/handler"
)

// RouterConfig carries the knobs the HTTP surface needs.
type RouterConfig struct {
	AllowedOrigins     []string
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewRouter assembles the route table and middleware chain.
func NewRouter(
	cfg RouterConfig,
	authSvc *auth.Service,
	authHandler *auth.Handler,
	extraction *extractionhandler.Handler,
	registry *prometheus.Registry,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	mux.Handle("POST /api/upload/file", authSvc.Middleware(http.HandlerFunc(extraction.ProcessUpload)))
	mux.Handle("POST /api/upload/confirm", authSvc.Middleware(http.HandlerFunc(extraction.Confirm)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	var handler http.Handler = mux
	handler = RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst)(handler)
	handler = corsMiddleware.Handler(handler)
	handler = RequestLogger(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
