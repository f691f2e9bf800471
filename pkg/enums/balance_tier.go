package enums

// BalanceTier is one of the four fixed wallet-balance bands used to
// segment users for reporting.
type BalanceTier string

const (
	TierVIP      BalanceTier = "vip"
	TierActive   BalanceTier = "active"
	TierMedium   BalanceTier = "medium"
	TierInactive BalanceTier = "inactive"
)

// String implements fmt.Stringer.
func (b BalanceTier) String() string {
	return string(b)
}

// TierForBalance classifies a wallet balance into a tier. Balances in the
// open interval (0, 500) belong to no tier and return ok=false.
func TierForBalance(balance float64) (BalanceTier, bool) {
	switch {
	case balance > 2000:
		return TierVIP, true
	case balance >= 1000:
		return TierActive, true
	case balance >= 500:
		return TierMedium, true
	case balance <= 0:
		return TierInactive, true
	default:
		return "", false
	}
}
