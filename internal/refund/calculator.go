package refund

// TierPercentage maps hours-until-service to the refundable share of the
// booking amount. More notice means more money back:
//
//	service already passed  ->   0%
//	less than 6 hours       ->  25%
//	6 to 12 hours           ->  50%
//	12 to 24 hours          ->  75%
//	24 hours or more        -> 100%
func TierPercentage(hoursUntilService float64) int {
	switch {
	case hoursUntilService < 0:
		return 0
	case hoursUntilService < 6:
		return 25
	case hoursUntilService < 12:
		return 50
	case hoursUntilService < 24:
		return 75
	default:
		return 100
	}
}

// Amount computes the refund in cents, rounding half-up to the nearest cent.
func Amount(amountCents int64, percentage int) int64 {
	return (amountCents*int64(percentage) + 50) / 100
}
