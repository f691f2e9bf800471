package reporting

import (
	"context"
	"time"

	"github.com/shipdeskhq/shipdesk-backend/pkg/errors"
	"github.com/shipdeskhq/shipdesk-backend/pkg/logger"
	"github.com/shipdeskhq/shipdesk-backend/pkg/metrics"
)

// Source supplies one batch of raw report inputs for a resolved range.
// Implementations degrade unavailable sources to their zero values rather
// than failing the batch.
type Source interface {
	FetchAll(ctx context.Context, rng DateRange) SourceData
}

// Service builds report snapshots for period selections.
type Service interface {
	Overview(ctx context.Context, sel PeriodSelection) (*ReportSnapshot, error)
}

type service struct {
	source  Source
	logg    *logger.Logger
	metrics *metrics.ReportMetrics
	clock   func() time.Time
}

// NewService wires a report service over the given source. The clock is
// injectable so period resolution is reproducible in tests; nil defaults
// to the wall clock in UTC.
func NewService(source Source, logg *logger.Logger, m *metrics.ReportMetrics, clock func() time.Time) (Service, error) {
	if source == nil {
		return nil, errors.New(errors.CodeInternal, "reporting service requires a source")
	}
	if logg == nil {
		return nil, errors.New(errors.CodeInternal, "reporting service requires a logger")
	}
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		source:  source,
		logg:    logg,
		metrics: m,
		clock:   clock,
	}, nil
}

func (s *service) Overview(ctx context.Context, sel PeriodSelection) (*ReportSnapshot, error) {
	ctx = s.logg.WithPeriod(ctx, string(sel.Selector))
	started := s.clock()

	rng := ResolvePeriod(sel, started)
	data := s.source.FetchAll(ctx, rng)
	snapshot := BuildSnapshot(data, rng)

	s.metrics.ObserveBuild(string(sel.Selector), s.clock().Sub(started))
	s.logg.Info(ctx, "report snapshot built")
	return &snapshot, nil
}
