package reports

import (
	"context"
	"io"

	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
	"github.com/shipdeskhq/shipdesk-backend/pkg/logger"
)

type testReportService struct {
	last     reporting.PeriodSelection
	snapshot *reporting.ReportSnapshot
	err      error
	calls    int
}

func (s *testReportService) Overview(_ context.Context, sel reporting.PeriodSelection) (*reporting.ReportSnapshot, error) {
	s.last = sel
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.snapshot == nil {
		s.snapshot = &reporting.ReportSnapshot{}
	}
	return s.snapshot, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}
