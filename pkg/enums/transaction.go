package enums

import "strings"

// TransactionType classifies wallet transactions as reported upstream.
// Only the credit-like subset matters to the reporting engine.
type TransactionType string

const (
	TransactionCredit          TransactionType = "CREDIT"
	TransactionDeposit         TransactionType = "DEPOSIT"
	TransactionApproved        TransactionType = "APPROVED"
	TransactionPaymentReceived TransactionType = "PAYMENT_RECEIVED"
)

var creditLikeTypes = []TransactionType{
	TransactionCredit,
	TransactionDeposit,
	TransactionApproved,
	TransactionPaymentReceived,
}

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	return string(t)
}

// IsCreditLike reports whether a raw transaction type counts as money
// entering a wallet. Matching is case-insensitive; anything outside the
// allow-list is not credit-like.
func IsCreditLike(raw string) bool {
	for _, candidate := range creditLikeTypes {
		if strings.EqualFold(raw, string(candidate)) {
			return true
		}
	}
	return false
}
