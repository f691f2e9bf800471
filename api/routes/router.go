package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shipdeskhq/shipdesk-backend/api/controllers"
	reportcontrollers "github.com/shipdeskhq/shipdesk-backend/api/controllers/reports"
	"github.com/shipdeskhq/shipdesk-backend/api/middleware"
	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
	"github.com/shipdeskhq/shipdesk-backend/pkg/config"
	"github.com/shipdeskhq/shipdesk-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient controllers.Pinger,
	upstreamClient controllers.Pinger,
	reportService reporting.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg,
			controllers.NamedPinger("redis", redisClient),
			controllers.NamedPinger("upstream", upstreamClient),
		))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/admin/v1/reports", func(r chi.Router) {
		r.Get("/overview", reportcontrollers.Overview(reportService, logg))
	})

	return r
}
