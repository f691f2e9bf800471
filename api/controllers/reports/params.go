package reports

import (
	"net/http"
	"strings"

	"github.com/shipdeskhq/shipdesk-backend/api/validators"
	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
	"github.com/shipdeskhq/shipdesk-backend/pkg/enums"
)

type overviewQuery struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// resolveSelection maps query parameters onto a period selection. The
// period value itself is not validated: an unknown selector resolves to an
// unbounded range downstream. Month, year and custom bounds are rejected
// early when malformed, so a typo answers 400 instead of silently
// reporting everything.
func resolveSelection(r *http.Request) (reporting.PeriodSelection, error) {
	query := r.URL.Query()

	sel := reporting.PeriodSelection{
		Selector: enums.PeriodSelector(strings.TrimSpace(query.Get("period"))),
	}

	month, err := validators.ParseQueryInt(r, "month", 0, 11)
	if err != nil {
		return reporting.PeriodSelection{}, err
	}
	sel.Month = month

	year, err := validators.ParseQueryInt(r, "year", 2000, 2100)
	if err != nil {
		return reporting.PeriodSelection{}, err
	}
	sel.Year = year

	bounds := overviewQuery{
		From: strings.TrimSpace(query.Get("from")),
		To:   strings.TrimSpace(query.Get("to")),
	}
	if err := validators.ValidateStruct(bounds); err != nil {
		return reporting.PeriodSelection{}, err
	}
	sel.From = bounds.From
	sel.To = bounds.To

	return sel, nil
}
