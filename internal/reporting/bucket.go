package reporting

import "time"

// trailingMonths bounds the public bucket listing. The console's charts
// show only the most recent non-empty months; growth figures are computed
// over the same trimmed sequence, so the truncation must be preserved.
const trailingMonths = 4

// UserMonthly folds user sign-ups into calendar-month buckets. Users are
// not range-filtered: the chart always reflects the full population.
func UserMonthly(users []UserRecord) []MonthlyBucket {
	return bucketMonthly(len(users), func(i int) time.Time {
		return users[i].CreatedAt
	}, nil, nil)
}

// OrderMonthly folds orders into calendar-month buckets, summing revenue
// and skipping orders outside the resolved range (bounds inclusive).
func OrderMonthly(orders []OrderRecord, rng DateRange) []MonthlyBucket {
	return bucketMonthly(len(orders), func(i int) time.Time {
		return orders[i].CreatedAt
	}, func(i int) float64 {
		return orders[i].TotalAmount
	}, &rng)
}

// bucketMonthly accumulates into twelve month-indexed buckets regardless of
// year, drops empty months, and keeps the trailing months in month order.
// Records with a zero timestamp are excluded silently.
func bucketMonthly(size int, at func(int) time.Time, amount func(int) float64, rng *DateRange) []MonthlyBucket {
	var buckets [12]MonthlyBucket
	for m := range buckets {
		buckets[m].Month = time.Month(m + 1).String()
	}

	for i := 0; i < size; i++ {
		ts := at(i)
		if ts.IsZero() {
			continue
		}
		if rng != nil && !rng.Contains(ts) {
			continue
		}
		m := int(ts.Month()) - 1
		buckets[m].Count++
		if amount != nil {
			buckets[m].Revenue += sanitizeAmount(amount(i))
		}
	}

	out := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Count > 0 {
			out = append(out, b)
		}
	}
	if len(out) > trailingMonths {
		out = out[len(out)-trailingMonths:]
	}
	return out
}

// BucketCount selects a bucket's record count for growth computation.
func BucketCount(b MonthlyBucket) float64 { return float64(b.Count) }

// BucketRevenue selects a bucket's summed revenue for growth computation.
func BucketRevenue(b MonthlyBucket) float64 { return b.Revenue }

// GrowthRate is the percentage change of the selected value between the
// last two buckets: zero when fewer than two buckets exist or the earlier
// value is not positive. The result is not rounded; rounding is a display
// concern.
func GrowthRate(buckets []MonthlyBucket, value func(MonthlyBucket) float64) float64 {
	if len(buckets) < 2 {
		return 0
	}
	prev := value(buckets[len(buckets)-2])
	curr := value(buckets[len(buckets)-1])
	if prev <= 0 {
		return 0
	}
	return (curr - prev) / prev * 100
}
