package reporting

import (
	"time"

	"github.com/shipdeskhq/shipdesk-backend/pkg/enums"
)

// Raw inputs supplied by the platform admin API. The engine never mutates
// them; a zero CreatedAt means the upstream timestamp was missing or
// unparseable and the record is skipped by time-bucketed aggregations.

type OrderRecord struct {
	ID          string
	CreatedAt   time.Time
	TotalAmount float64
}

type UserRecord struct {
	ID              string
	CreatedAt       time.Time
	Balance         float64
	Active          bool
	WalletRecharges int
}

type TransactionRecord struct {
	ID         string
	CustomerID string
	Type       string
	Amount     float64
	CreatedAt  time.Time
}

// ShipmentTotals carries per-status shipment counts. Statuses may overlap
// or be incomplete in source data; the sum is not reconciled against Total.
type ShipmentTotals struct {
	Total          int
	Delivered      int
	InTransit      int
	ReadyForPickup int
	Canceled       int
	Returns        int
}

type CarrierFinancials struct {
	OurProfit        float64
	PayableToCarrier float64
	TotalRevenue     float64
}

type CarrierStat struct {
	Name       string
	Totals     ShipmentTotals
	Financials CarrierFinancials
}

type CarrierTypeStat struct {
	CarrierName  string
	ShipmentType string
	Totals       ShipmentTotals
	Financials   CarrierFinancials
}

type PlatformStat struct {
	Name    string
	Orders  int
	Revenue float64
}

// ShipmentStats is the legacy aggregate endpoint, kept as a fallback for
// the total-shipments figure.
type ShipmentStats struct {
	Total int
}

// SourceData joins every raw input for one report build. Unavailable
// sources arrive as their zero values.
type SourceData struct {
	Users           []UserRecord
	Orders          []OrderRecord
	Overall         *CarrierStat
	Carriers        []CarrierStat
	CarrierTypes    []CarrierTypeStat
	Platforms       []PlatformStat
	Transactions    []TransactionRecord
	LegacyShipments ShipmentStats
}

// DateRange is a resolved reporting window. A nil bound means unbounded on
// that side. Both bounds are inclusive.
type DateRange struct {
	Start *time.Time `json:"start_date"`
	End   *time.Time `json:"end_date"`
}

// Contains reports whether t falls inside the range, bounds inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// MonthlyBucket tallies records for one calendar month, accumulated
// without regard to year.
type MonthlyBucket struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue,omitempty"`
}

// RollupFigures is the uniform shape shared by carrier reports and their
// per-shipment-type breakdowns.
type RollupFigures struct {
	TotalShipments          int                  `json:"total_shipments"`
	DeliveredShipments      int                  `json:"delivered_shipments"`
	InTransitShipments      int                  `json:"in_transit_shipments"`
	ReadyForPickupShipments int                  `json:"ready_for_pickup_shipments"`
	CanceledShipments       int                  `json:"canceled_shipments"`
	ReturnsShipments        int                  `json:"returns_shipments"`
	Profit                  float64              `json:"profit"`
	AmountDue               float64              `json:"amount_due"`
	TotalRevenue            float64              `json:"total_revenue"`
	DeliveryRate            float64              `json:"delivery_rate"`
	Rating                  enums.DeliveryRating `json:"rating"`
}

type CarrierTypeReport struct {
	ShipmentType string `json:"shipment_type"`
	RollupFigures
}

type CarrierReport struct {
	Name string `json:"name"`
	RollupFigures
	VAT           float64             `json:"vat"`
	NetProfit     float64             `json:"net_profit"`
	ShipmentTypes []CarrierTypeReport `json:"shipment_types"`
}

type PlatformReport struct {
	Name            string  `json:"name"`
	Orders          int     `json:"orders"`
	Revenue         float64 `json:"revenue"`
	RevenuePerOrder float64 `json:"revenue_per_order"`
}

type WalletDailyRecord struct {
	Date      string  `json:"date"`
	Users     int     `json:"users"`
	Amount    float64 `json:"amount"`
	AvgAmount float64 `json:"avg_amount"`
	Count     int     `json:"count"`
}

// WalletActivity is the per-day credit activity plus the period-wide count
// of qualifying operations.
type WalletActivity struct {
	Daily        []WalletDailyRecord `json:"daily"`
	ChargesCount int                 `json:"charges_count"`
}

type WalletSegment struct {
	Count      int     `json:"count"`
	AvgBalance float64 `json:"avg_balance"`
	Percent    float64 `json:"percent"`
}

type WalletSegments struct {
	VIP      WalletSegment `json:"vip"`
	Active   WalletSegment `json:"active"`
	Medium   WalletSegment `json:"medium"`
	Inactive WalletSegment `json:"inactive"`
}

// ReportSnapshot is the assembled report for one resolved period. It is
// recomputed on every invocation and immutable once produced.
type ReportSnapshot struct {
	Period DateRange `json:"period"`

	TotalUsers     int     `json:"total_users"`
	ActiveUsers    int     `json:"active_users"`
	TotalOrders    int     `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalShipments int     `json:"total_shipments"`

	UserMonthly   []MonthlyBucket `json:"user_monthly"`
	UserGrowth    float64         `json:"user_growth"`
	OrderMonthly  []MonthlyBucket `json:"order_monthly"`
	OrderGrowth   float64         `json:"order_growth"`
	RevenueGrowth float64         `json:"revenue_growth"`

	Carriers  []CarrierReport  `json:"carriers"`
	Platforms []PlatformReport `json:"platforms"`

	WalletDaily        []WalletDailyRecord `json:"wallet_daily"`
	WalletChargesCount int                 `json:"wallet_charges_count"`
	WalletSegments     WalletSegments      `json:"wallet_segments"`
}
