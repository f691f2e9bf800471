package enums

// DeliveryRating classifies a carrier's delivery rate. The thresholds are a
// contract the console's styling relies on, not cosmetics.
type DeliveryRating string

const (
	RatingExcellent DeliveryRating = "excellent"
	RatingGood      DeliveryRating = "good"
	RatingFair      DeliveryRating = "fair"
)

// String implements fmt.Stringer.
func (r DeliveryRating) String() string {
	return string(r)
}

// RateDelivery maps a delivery-rate percentage to its rating band.
func RateDelivery(rate float64) DeliveryRating {
	switch {
	case rate >= 80:
		return RatingExcellent
	case rate >= 60:
		return RatingGood
	default:
		return RatingFair
	}
}
