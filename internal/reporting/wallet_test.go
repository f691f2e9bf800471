package reporting

import (
	"testing"
	"time"
)

func creditAt(day int, customer string, amount float64) TransactionRecord {
	return TransactionRecord{
		ID:         customer + "-tx",
		CustomerID: customer,
		Type:       "CREDIT",
		Amount:     amount,
		CreatedAt:  time.Date(2024, time.June, day, 10, 30, 0, 0, time.UTC),
	}
}

func TestWalletActivityGroupsByDay(t *testing.T) {
	txs := []TransactionRecord{
		creditAt(3, "u1", 100),
		creditAt(3, "u2", 150),
		creditAt(3, "u1", 50), // same customer twice on the same day
		creditAt(7, "u3", 300),
	}

	activity := WalletActivityReport(txs, DateRange{})
	if len(activity.Daily) != 2 {
		t.Fatalf("expected 2 days, got %d: %+v", len(activity.Daily), activity.Daily)
	}

	day := activity.Daily[0]
	if day.Date != "2024-06-03" {
		t.Fatalf("days must sort ascending, got first %s", day.Date)
	}
	if day.Users != 2 {
		t.Fatalf("expected 2 distinct users, got %d", day.Users)
	}
	if day.Count != 3 || day.Amount != 300 {
		t.Fatalf("unexpected day totals: %+v", day)
	}
	if day.AvgAmount != 100 {
		t.Fatalf("expected avg 300/3 = 100, got %v", day.AvgAmount)
	}
	if activity.ChargesCount != 4 {
		t.Fatalf("charges count tallies operations, got %d", activity.ChargesCount)
	}
}

func TestWalletActivityFiltersNonCreditTypes(t *testing.T) {
	txs := []TransactionRecord{
		creditAt(1, "u1", 100),
		{ID: "w1", CustomerID: "u1", Type: "WITHDRAWAL", Amount: 500, CreatedAt: creditAt(1, "u1", 0).CreatedAt},
		{ID: "d1", CustomerID: "u2", Type: "deposit", Amount: 200, CreatedAt: creditAt(1, "u2", 0).CreatedAt},
		{ID: "p1", CustomerID: "u3", Type: "Payment_Received", Amount: 50, CreatedAt: creditAt(2, "u3", 0).CreatedAt},
	}

	activity := WalletActivityReport(txs, DateRange{})
	if activity.ChargesCount != 3 {
		t.Fatalf("type matching must be case-insensitive, got %d charges", activity.ChargesCount)
	}
	if activity.Daily[0].Amount != 300 {
		t.Fatalf("withdrawal must not contribute, got %v", activity.Daily[0].Amount)
	}
}

func TestWalletActivityRespectsRange(t *testing.T) {
	start := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	rng := DateRange{Start: &start}

	txs := []TransactionRecord{
		creditAt(3, "u1", 100), // before the window
		creditAt(6, "u2", 200),
		{ID: "z", CustomerID: "u3", Type: "CREDIT", Amount: 75}, // zero timestamp
	}

	activity := WalletActivityReport(txs, rng)
	if len(activity.Daily) != 1 || activity.Daily[0].Date != "2024-06-06" {
		t.Fatalf("expected only the in-window day, got %+v", activity.Daily)
	}
	if activity.ChargesCount != 1 {
		t.Fatalf("expected 1 charge, got %d", activity.ChargesCount)
	}
}

func TestWalletActivityUsersFallBackToCount(t *testing.T) {
	ts := time.Date(2024, time.June, 9, 8, 0, 0, 0, time.UTC)
	txs := []TransactionRecord{
		{ID: "a", Type: "APPROVED", Amount: 10, CreatedAt: ts},
		{ID: "b", Type: "APPROVED", Amount: 20, CreatedAt: ts},
	}

	activity := WalletActivityReport(txs, DateRange{})
	if activity.Daily[0].Users != 2 {
		t.Fatalf("without customer ids, users falls back to operation count, got %d", activity.Daily[0].Users)
	}
}

func TestWalletActivityEmpty(t *testing.T) {
	activity := WalletActivityReport(nil, DateRange{})
	if len(activity.Daily) != 0 || activity.ChargesCount != 0 {
		t.Fatalf("expected empty activity, got %+v", activity)
	}
}

func TestSegmentUsersTiers(t *testing.T) {
	users := []UserRecord{
		{ID: "vip", Balance: 2500},
		{ID: "active", Balance: 1500},
		{ID: "medium", Balance: 700},
		{ID: "broke", Balance: 0},
		{ID: "overdrawn", Balance: -10},
	}

	segments := SegmentUsers(users)
	if segments.VIP.Count != 1 || segments.Active.Count != 1 || segments.Medium.Count != 1 {
		t.Fatalf("unexpected tier counts: %+v", segments)
	}
	if segments.Inactive.Count != 2 {
		t.Fatalf("zero and negative balances are both inactive, got %d", segments.Inactive.Count)
	}
	if segments.VIP.AvgBalance != 2500 || segments.Medium.AvgBalance != 700 {
		t.Fatalf("unexpected averages: %+v", segments)
	}
	if segments.Inactive.AvgBalance != 0 {
		t.Fatalf("inactive average is 0 by definition, got %v", segments.Inactive.AvgBalance)
	}
	if segments.VIP.Percent != 20 || segments.Inactive.Percent != 40 {
		t.Fatalf("unexpected percentages: %+v", segments)
	}
	if segments.VIP.Percent+segments.Active.Percent+segments.Medium.Percent+segments.Inactive.Percent != 100 {
		t.Fatalf("fully classified population should sum to 100%%: %+v", segments)
	}
}

func TestSegmentUsersLeavesGapUnclassified(t *testing.T) {
	users := []UserRecord{
		{ID: "a", Balance: 1200},
		{ID: "b", Balance: 250}, // (0, 500): no tier
		{ID: "c", Balance: 499.99},
	}

	segments := SegmentUsers(users)
	classified := segments.VIP.Count + segments.Active.Count + segments.Medium.Count + segments.Inactive.Count
	if classified != 1 {
		t.Fatalf("balances in (0, 500) belong to no tier, classified %d", classified)
	}
	total := segments.VIP.Percent + segments.Active.Percent + segments.Medium.Percent + segments.Inactive.Percent
	if total >= 100 {
		t.Fatalf("percentages must not account for unclassified users, got %v", total)
	}
}

func TestSegmentUsersBoundaries(t *testing.T) {
	cases := []struct {
		balance float64
		want    func(WalletSegments) int
		name    string
	}{
		{2000.01, func(s WalletSegments) int { return s.VIP.Count }, "just above 2000 is vip"},
		{2000, func(s WalletSegments) int { return s.Active.Count }, "2000 is active"},
		{1000, func(s WalletSegments) int { return s.Active.Count }, "1000 is active"},
		{999.99, func(s WalletSegments) int { return s.Medium.Count }, "just below 1000 is medium"},
		{500, func(s WalletSegments) int { return s.Medium.Count }, "500 is medium"},
		{0, func(s WalletSegments) int { return s.Inactive.Count }, "0 is inactive"},
	}
	for _, tc := range cases {
		segments := SegmentUsers([]UserRecord{{ID: "u", Balance: tc.balance}})
		if tc.want(segments) != 1 {
			t.Fatalf("%s: %+v", tc.name, segments)
		}
	}
}

func TestSegmentUsersEmpty(t *testing.T) {
	segments := SegmentUsers(nil)
	if segments.VIP.Percent != 0 || segments.Inactive.AvgBalance != 0 {
		t.Fatalf("empty population should zero everything, got %+v", segments)
	}
}
