package reporting

import (
	"sort"

	"github.com/shipdeskhq/shipdesk-backend/pkg/enums"
)

type dayAccumulator struct {
	amount    float64
	count     int
	customers map[string]struct{}
}

// WalletActivityReport scans raw transactions, keeps credit-like ones
// inside the resolved period, and produces per-day records plus the
// period-wide count of qualifying operations. ChargesCount counts
// operations, not distinct users.
func WalletActivityReport(txs []TransactionRecord, rng DateRange) WalletActivity {
	days := make(map[string]*dayAccumulator)

	for _, tx := range txs {
		if !enums.IsCreditLike(tx.Type) {
			continue
		}
		if tx.CreatedAt.IsZero() || !rng.Contains(tx.CreatedAt) {
			continue
		}

		// transactions group by their UTC day regardless of source zone
		key := tx.CreatedAt.UTC().Format(dayFormat)
		acc := days[key]
		if acc == nil {
			acc = &dayAccumulator{customers: make(map[string]struct{})}
			days[key] = acc
		}
		acc.amount += sanitizeAmount(tx.Amount)
		acc.count++
		if tx.CustomerID != "" {
			acc.customers[tx.CustomerID] = struct{}{}
		}
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	activity := WalletActivity{Daily: make([]WalletDailyRecord, 0, len(keys))}
	for _, key := range keys {
		acc := days[key]
		users := len(acc.customers)
		if users == 0 {
			// no transaction that day carried a customer id
			users = acc.count
		}
		activity.Daily = append(activity.Daily, WalletDailyRecord{
			Date:      key,
			Users:     users,
			Amount:    acc.amount,
			AvgAmount: roundDiv(acc.amount, acc.count),
			Count:     acc.count,
		})
		activity.ChargesCount += acc.count
	}
	return activity
}

type segmentAccumulator struct {
	count int
	sum   float64
}

// SegmentUsers classifies users into the four fixed balance tiers.
// Balances in (0, 500) belong to no tier, so tier percentages may sum to
// less than 100. The inactive tier's balance sum is never accumulated:
// its average is 0 by definition of the tier.
func SegmentUsers(users []UserRecord) WalletSegments {
	accs := map[enums.BalanceTier]*segmentAccumulator{
		enums.TierVIP:      {},
		enums.TierActive:   {},
		enums.TierMedium:   {},
		enums.TierInactive: {},
	}

	for _, u := range users {
		tier, ok := enums.TierForBalance(u.Balance)
		if !ok {
			continue
		}
		acc := accs[tier]
		acc.count++
		if tier != enums.TierInactive {
			acc.sum += sanitizeAmount(u.Balance)
		}
	}

	total := len(users)
	build := func(tier enums.BalanceTier) WalletSegment {
		acc := accs[tier]
		return WalletSegment{
			Count:      acc.count,
			AvgBalance: roundDiv(acc.sum, acc.count),
			Percent:    percentOf(acc.count, total),
		}
	}

	return WalletSegments{
		VIP:      build(enums.TierVIP),
		Active:   build(enums.TierActive),
		Medium:   build(enums.TierMedium),
		Inactive: build(enums.TierInactive),
	}
}
