package controllers

import (
	"context"
	"net/http"

	"github.com/shipdeskhq/shipdesk-backend/api/responses"
	"github.com/shipdeskhq/shipdesk-backend/pkg/config"
	pkgerrors "github.com/shipdeskhq/shipdesk-backend/pkg/errors"
	"github.com/shipdeskhq/shipdesk-backend/pkg/logger"
)

// Pinger is any dependency that can report its connectivity.
type Pinger interface {
	Ping(context.Context) error
}

type namedPinger struct {
	name   string
	pinger Pinger
}

func NamedPinger(name string, pinger Pinger) namedPinger {
	return namedPinger{name: name, pinger: pinger}
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShipDesk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings each dependency and reports not-ready on the first
// failure.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps ...namedPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShipDesk-Env", cfg.App.Env)
		ctx := r.Context()

		for _, dep := range deps {
			if dep.pinger == nil {
				continue
			}
			if err := dep.pinger.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, dep.name+" not ready"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
