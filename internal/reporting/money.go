package reporting

import (
	"math"

	"github.com/shopspring/decimal"
)

var pointFive = decimal.NewFromFloat(0.5)

// sanitizeAmount normalizes raw numeric input: NaN, infinities and negative
// zero all map to 0. Negative amounts pass through untouched; refusing them
// is not this engine's call.
func sanitizeAmount(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	if x == 0 {
		return 0
	}
	return x
}

// roundHalf rounds halves toward positive infinity, matching the console's
// Math.round. Decimal arithmetic avoids float artifacts around .5 values.
func roundHalf(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return roundHalfDecimal(decimal.NewFromFloat(x))
}

func roundHalfDecimal(d decimal.Decimal) float64 {
	return d.Add(pointFive).Floor().InexactFloat64()
}

// roundDiv returns round(sum/count) guarded against zero and negative
// counts. Empty groups report 0 rather than dividing by zero.
func roundDiv(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	q := decimal.NewFromFloat(sanitizeAmount(sum)).Div(decimal.NewFromInt(int64(count)))
	return roundHalfDecimal(q)
}

// percentOf returns count/total*100 guarded against an empty population.
func percentOf(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
