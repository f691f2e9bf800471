package reporting

// BuildSnapshot assembles the full report from one batch of source data.
// It is a pure function of its inputs: given the same data and range it
// produces an identical snapshot, so cached copies never drift.
func BuildSnapshot(data SourceData, rng DateRange) ReportSnapshot {
	snapshot := ReportSnapshot{
		Period:     rng,
		TotalUsers: len(data.Users),
	}

	for _, u := range data.Users {
		if u.Active {
			snapshot.ActiveUsers++
		}
	}

	var orderRevenue float64
	for _, o := range data.Orders {
		if o.CreatedAt.IsZero() || !rng.Contains(o.CreatedAt) {
			continue
		}
		snapshot.TotalOrders++
		orderRevenue += sanitizeAmount(o.TotalAmount)
	}

	// The overall carrier aggregate is authoritative when it carries a
	// positive figure; otherwise fall back to sums over the raw inputs.
	snapshot.TotalRevenue = orderRevenue
	if data.Overall != nil && data.Overall.Financials.TotalRevenue > 0 {
		snapshot.TotalRevenue = data.Overall.Financials.TotalRevenue
	}
	switch {
	case data.Overall != nil && data.Overall.Totals.Total > 0:
		snapshot.TotalShipments = data.Overall.Totals.Total
	case data.LegacyShipments.Total > 0:
		snapshot.TotalShipments = data.LegacyShipments.Total
	}

	snapshot.UserMonthly = UserMonthly(data.Users)
	snapshot.UserGrowth = GrowthRate(snapshot.UserMonthly, BucketCount)
	snapshot.OrderMonthly = OrderMonthly(data.Orders, rng)
	snapshot.OrderGrowth = GrowthRate(snapshot.OrderMonthly, BucketCount)
	snapshot.RevenueGrowth = GrowthRate(snapshot.OrderMonthly, BucketRevenue)

	snapshot.Carriers = RollupCarriers(data.Carriers, data.CarrierTypes)
	snapshot.Platforms = RollupPlatforms(data.Platforms)

	activity := WalletActivityReport(data.Transactions, rng)
	snapshot.WalletDaily = activity.Daily
	snapshot.WalletChargesCount = activity.ChargesCount
	snapshot.WalletSegments = SegmentUsers(data.Users)

	return snapshot
}
