package reporting

import (
	"github.com/shipdeskhq/shipdesk-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// vatRate is the fixed VAT share applied to gross carrier profit.
var vatRate = decimal.NewFromFloat(0.15)

// VAT returns the rounded VAT owed on a gross profit figure. Rounding
// happens on the VAT term itself, before it is subtracted from profit.
func VAT(profit float64) float64 {
	return roundHalfDecimal(decimal.NewFromFloat(sanitizeAmount(profit)).Mul(vatRate))
}

// NetProfit is the canonical three-step derivation: gross profit, minus
// rounded VAT, minus the amount payable to the carrier.
func NetProfit(profit, amountDue float64) float64 {
	return sanitizeAmount(profit) - VAT(profit) - sanitizeAmount(amountDue)
}

// DeliveryRate is delivered/total*100 to one decimal place, or 0 for an
// empty carrier. The one-decimal form is what the rating thresholds see.
func DeliveryRate(delivered, total int) float64 {
	if total <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(delivered)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100))
	return rate.Round(1).InexactFloat64()
}

// RollupCarriers normalizes per-carrier totals into carrier reports and
// attaches per-shipment-type breakdowns. Profit is carried verbatim from
// the upstream financials; it is realized on delivered shipments by the
// upstream's definition and never re-derived here. Type records that
// reference no known carrier name are dropped.
func RollupCarriers(carriers []CarrierStat, byType []CarrierTypeStat) []CarrierReport {
	reports := make([]CarrierReport, 0, len(carriers))
	index := make(map[string]int, len(carriers))

	for _, c := range carriers {
		figures := rollupFigures(c.Totals, c.Financials)
		report := CarrierReport{
			Name:          c.Name,
			RollupFigures: figures,
			VAT:           VAT(figures.Profit),
		}
		report.NetProfit = figures.Profit - report.VAT - figures.AmountDue
		index[c.Name] = len(reports)
		reports = append(reports, report)
	}

	for _, t := range byType {
		i, ok := index[t.CarrierName]
		if !ok {
			continue
		}
		reports[i].ShipmentTypes = append(reports[i].ShipmentTypes, CarrierTypeReport{
			ShipmentType:  t.ShipmentType,
			RollupFigures: rollupFigures(t.Totals, t.Financials),
		})
	}

	return reports
}

func rollupFigures(totals ShipmentTotals, financials CarrierFinancials) RollupFigures {
	rate := DeliveryRate(totals.Delivered, totals.Total)
	return RollupFigures{
		TotalShipments:          totals.Total,
		DeliveredShipments:      totals.Delivered,
		InTransitShipments:      totals.InTransit,
		ReadyForPickupShipments: totals.ReadyForPickup,
		CanceledShipments:       totals.Canceled,
		ReturnsShipments:        totals.Returns,
		Profit:                  sanitizeAmount(financials.OurProfit),
		AmountDue:               sanitizeAmount(financials.PayableToCarrier),
		TotalRevenue:            sanitizeAmount(financials.TotalRevenue),
		DeliveryRate:            rate,
		Rating:                  enums.RateDelivery(rate),
	}
}

// RollupPlatforms summarizes platform order/revenue figures with a derived
// per-order revenue, guarded against platforms with no orders.
func RollupPlatforms(stats []PlatformStat) []PlatformReport {
	reports := make([]PlatformReport, 0, len(stats))
	for _, s := range stats {
		revenue := sanitizeAmount(s.Revenue)
		report := PlatformReport{
			Name:    s.Name,
			Orders:  s.Orders,
			Revenue: revenue,
		}
		if s.Orders > 0 {
			report.RevenuePerOrder = decimal.NewFromFloat(revenue).
				Div(decimal.NewFromInt(int64(s.Orders))).
				Round(2).
				InexactFloat64()
		}
		reports = append(reports, report)
	}
	return reports
}
