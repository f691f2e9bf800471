package upstream

import (
	"time"

	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
)

// The admin API grew organically and ships several shapes for the same
// figure. Normalization resolves each with a fixed precedence and coerces
// missing values to zero instead of failing a record.

type rawUser struct {
	ID        string   `json:"id"`
	CreatedAt string   `json:"createdAt"`
	Active    *bool    `json:"active"`
	Balance   *float64 `json:"balance"`
	Wallet    *struct {
		Balance   *float64 `json:"balance"`
		Recharges *int     `json:"recharges"`
	} `json:"wallet"`
}

func (r rawUser) normalize() reporting.UserRecord {
	user := reporting.UserRecord{
		ID:        r.ID,
		CreatedAt: parseTimestamp(r.CreatedAt),
	}
	if r.Active != nil {
		user.Active = *r.Active
	}
	// nested wallet balance beats the legacy top-level field
	switch {
	case r.Wallet != nil && r.Wallet.Balance != nil:
		user.Balance = *r.Wallet.Balance
	case r.Balance != nil:
		user.Balance = *r.Balance
	}
	if r.Wallet != nil && r.Wallet.Recharges != nil {
		user.WalletRecharges = *r.Wallet.Recharges
	}
	return user
}

type rawOrder struct {
	ID          string   `json:"id"`
	CreatedAt   string   `json:"createdAt"`
	TotalAmount *float64 `json:"totalAmount"`
	TotalPrice  *float64 `json:"totalPrice"`
}

func (r rawOrder) normalize() reporting.OrderRecord {
	order := reporting.OrderRecord{
		ID:        r.ID,
		CreatedAt: parseTimestamp(r.CreatedAt),
	}
	switch {
	case r.TotalAmount != nil:
		order.TotalAmount = *r.TotalAmount
	case r.TotalPrice != nil:
		order.TotalAmount = *r.TotalPrice
	}
	return order
}

type rawTransaction struct {
	ID         string   `json:"id"`
	CustomerID string   `json:"customerId"`
	UserID     string   `json:"userId"`
	Type       string   `json:"type"`
	Amount     *float64 `json:"amount"`
	CreatedAt  string   `json:"createdAt"`
}

func (r rawTransaction) normalize() reporting.TransactionRecord {
	tx := reporting.TransactionRecord{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Type:       r.Type,
		CreatedAt:  parseTimestamp(r.CreatedAt),
	}
	if tx.CustomerID == "" {
		tx.CustomerID = r.UserID
	}
	if r.Amount != nil {
		tx.Amount = *r.Amount
	}
	return tx
}

type rawShipmentTotals struct {
	Total          int `json:"total"`
	Delivered      int `json:"delivered"`
	InTransit      int `json:"inTransit"`
	ReadyForPickup int `json:"readyForPickup"`
	Canceled       int `json:"canceled"`
	Returns        int `json:"returns"`
}

func (r rawShipmentTotals) normalize() reporting.ShipmentTotals {
	return reporting.ShipmentTotals{
		Total:          r.Total,
		Delivered:      r.Delivered,
		InTransit:      r.InTransit,
		ReadyForPickup: r.ReadyForPickup,
		Canceled:       r.Canceled,
		Returns:        r.Returns,
	}
}

type rawCarrierFinancials struct {
	OurProfit        *float64 `json:"ourProfit"`
	PayableToCarrier *float64 `json:"payableToCarrier"`
	TotalRevenue     *float64 `json:"totalRevenue"`
}

func (r rawCarrierFinancials) normalize() reporting.CarrierFinancials {
	var fin reporting.CarrierFinancials
	if r.OurProfit != nil {
		fin.OurProfit = *r.OurProfit
	}
	if r.PayableToCarrier != nil {
		fin.PayableToCarrier = *r.PayableToCarrier
	}
	if r.TotalRevenue != nil {
		fin.TotalRevenue = *r.TotalRevenue
	}
	return fin
}

type rawCarrierStat struct {
	Name       string               `json:"name"`
	Totals     rawShipmentTotals    `json:"totals"`
	Financials rawCarrierFinancials `json:"financials"`
}

func (r rawCarrierStat) normalize() reporting.CarrierStat {
	return reporting.CarrierStat{
		Name:       r.Name,
		Totals:     r.Totals.normalize(),
		Financials: r.Financials.normalize(),
	}
}

type rawCarrierTypeStat struct {
	CarrierName  string               `json:"carrierName"`
	ShipmentType string               `json:"shipmentType"`
	Totals       rawShipmentTotals    `json:"totals"`
	Financials   rawCarrierFinancials `json:"financials"`
}

type rawCarrierStats struct {
	Overall  *rawCarrierStat      `json:"overall"`
	Carriers []rawCarrierStat     `json:"carriers"`
	ByType   []rawCarrierTypeStat `json:"byType"`
}

func (r rawCarrierStats) normalize() (*reporting.CarrierStat, []reporting.CarrierStat, []reporting.CarrierTypeStat) {
	var overall *reporting.CarrierStat
	if r.Overall != nil {
		stat := r.Overall.normalize()
		overall = &stat
	}
	carriers := make([]reporting.CarrierStat, 0, len(r.Carriers))
	for _, c := range r.Carriers {
		carriers = append(carriers, c.normalize())
	}
	byType := make([]reporting.CarrierTypeStat, 0, len(r.ByType))
	for _, t := range r.ByType {
		byType = append(byType, reporting.CarrierTypeStat{
			CarrierName:  t.CarrierName,
			ShipmentType: t.ShipmentType,
			Totals:       t.Totals.normalize(),
			Financials:   t.Financials.normalize(),
		})
	}
	return overall, carriers, byType
}

type rawPlatformStat struct {
	Name    string   `json:"name"`
	Orders  int      `json:"orders"`
	Revenue *float64 `json:"revenue"`
}

func (r rawPlatformStat) normalize() reporting.PlatformStat {
	stat := reporting.PlatformStat{Name: r.Name, Orders: r.Orders}
	if r.Revenue != nil {
		stat.Revenue = *r.Revenue
	}
	return stat
}

type rawShipmentStats struct {
	Total int `json:"total"`
}

func (r rawShipmentStats) normalize() reporting.ShipmentStats {
	return reporting.ShipmentStats{Total: r.Total}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp tries the layouts the admin API is known to emit. An
// empty or unparseable value yields the zero time, which downstream
// aggregations treat as "skip this record".
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
