package reports

import (
	"net/http"

	"github.com/shipdeskhq/shipdesk-backend/api/responses"
	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
	"github.com/shipdeskhq/shipdesk-backend/pkg/logger"
)

// Overview serves the assembled report snapshot for the selected period.
func Overview(service reporting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sel, err := resolveSelection(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snapshot, err := service.Overview(ctx, sel)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, snapshot)
	}
}
