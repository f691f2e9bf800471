package upstream

import (
	"context"
	"sync"

	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
	"github.com/shipdeskhq/shipdesk-backend/pkg/logger"
	"github.com/shipdeskhq/shipdesk-backend/pkg/metrics"
)

// Fetcher gathers every report input in one parallel pass. It implements
// reporting.Source.
type Fetcher struct {
	client  *Client
	logg    *logger.Logger
	metrics *metrics.ReportMetrics
}

func NewFetcher(client *Client, logg *logger.Logger, m *metrics.ReportMetrics) *Fetcher {
	return &Fetcher{client: client, logg: logg, metrics: m}
}

// FetchAll fans out to every admin endpoint concurrently. A failing source
// degrades to its zero value so one broken endpoint cannot blank the whole
// report; each goroutine writes a disjoint set of fields.
func (f *Fetcher) FetchAll(ctx context.Context, rng reporting.DateRange) reporting.SourceData {
	var data reporting.SourceData
	var wg sync.WaitGroup

	wg.Add(6)
	go func() {
		defer wg.Done()
		users, err := f.client.Users(ctx)
		if err != nil {
			f.fallback(ctx, "users", err)
			return
		}
		data.Users = users
	}()
	go func() {
		defer wg.Done()
		orders, err := f.client.Orders(ctx, rng)
		if err != nil {
			f.fallback(ctx, "orders", err)
			return
		}
		data.Orders = orders
	}()
	go func() {
		defer wg.Done()
		overall, carriers, byType, err := f.client.CarrierStats(ctx, rng)
		if err != nil {
			f.fallback(ctx, "carrier_stats", err)
			return
		}
		data.Overall = overall
		data.Carriers = carriers
		data.CarrierTypes = byType
	}()
	go func() {
		defer wg.Done()
		platforms, err := f.client.PlatformStats(ctx, rng)
		if err != nil {
			f.fallback(ctx, "platform_stats", err)
			return
		}
		data.Platforms = platforms
	}()
	go func() {
		defer wg.Done()
		txs, err := f.client.Transactions(ctx, rng)
		if err != nil {
			f.fallback(ctx, "transactions", err)
			return
		}
		data.Transactions = txs
	}()
	go func() {
		defer wg.Done()
		shipments, err := f.client.ShipmentStats(ctx)
		if err != nil {
			f.fallback(ctx, "shipment_stats", err)
			return
		}
		data.LegacyShipments = shipments
	}()
	wg.Wait()

	return data
}

func (f *Fetcher) fallback(ctx context.Context, source string, err error) {
	f.metrics.IncSourceFallback(source)
	f.logg.Warn(f.logg.WithField(ctx, "source", source), "report source degraded: "+err.Error())
}
