package reports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
	"github.com/shipdeskhq/shipdesk-backend/pkg/enums"
	pkgerrors "github.com/shipdeskhq/shipdesk-backend/pkg/errors"
)

func TestOverviewPassesSelectionThrough(t *testing.T) {
	stub := &testReportService{snapshot: &reporting.ReportSnapshot{TotalUsers: 12}}
	handler := Overview(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/reports/overview?period=this_month&month=1&year=2024", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if stub.last.Selector != enums.PeriodThisMonth {
		t.Fatalf("unexpected selector %q", stub.last.Selector)
	}
	if stub.last.Month == nil || *stub.last.Month != 1 {
		t.Fatalf("expected month 1, got %+v", stub.last.Month)
	}
	if stub.last.Year == nil || *stub.last.Year != 2024 {
		t.Fatalf("expected year 2024, got %+v", stub.last.Year)
	}

	var envelope struct {
		Data reporting.ReportSnapshot `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if envelope.Data.TotalUsers != 12 {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestOverviewAcceptsCustomBounds(t *testing.T) {
	stub := &testReportService{}
	handler := Overview(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/reports/overview?period=custom&from=2024-01-01&to=2024-02-01", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if stub.last.From != "2024-01-01" || stub.last.To != "2024-02-01" {
		t.Fatalf("unexpected bounds: %+v", stub.last)
	}
}

func TestOverviewRejectsMalformedParams(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"month out of range", "/api/admin/v1/reports/overview?period=this_month&month=12"},
		{"month not numeric", "/api/admin/v1/reports/overview?period=this_month&month=feb"},
		{"bad from date", "/api/admin/v1/reports/overview?period=custom&from=01-01-2024"},
	}
	for _, tc := range cases {
		stub := &testReportService{}
		handler := Overview(stub, testLogger())

		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, resp.Code)
		}
		if stub.calls != 0 {
			t.Fatalf("%s: service should not run on invalid input", tc.name)
		}
	}
}

func TestOverviewUnknownPeriodIsNotRejected(t *testing.T) {
	stub := &testReportService{}
	handler := Overview(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/reports/overview?period=fortnight", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unknown selectors degrade to unbounded, got %d", resp.Code)
	}
	if stub.last.Selector != "fortnight" {
		t.Fatalf("selector should pass through untouched, got %q", stub.last.Selector)
	}
}

func TestOverviewMapsServiceErrors(t *testing.T) {
	stub := &testReportService{err: pkgerrors.New(pkgerrors.CodeDependency, "upstream unreachable")}
	handler := Overview(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/reports/overview?period=today", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
