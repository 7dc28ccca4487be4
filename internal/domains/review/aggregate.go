package review

import "github.com/shopspring/decimal"

// MeanScore computes the average of review scores with exact decimal
// arithmetic, rounded to two places. Nil when there is nothing to
// average; an unreviewed title has no rating rather than a zero one.
func MeanScore(scores []int) *float64 {
	if len(scores) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, s := range scores {
		sum = sum.Add(decimal.NewFromInt(int64(s)))
	}

	mean, _ := sum.
		Div(decimal.NewFromInt(int64(len(scores)))).
		Round(2).
		Float64()

	return &mean
}
