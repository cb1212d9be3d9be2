package game

import "github.com/shopspring/decimal"

// Distribution splits the pot across the four quarter-mode payout events.
type Distribution struct {
	Q1       float64 `json:"Q1"`
	Halftime float64 `json:"HALFTIME"`
	Q3       float64 `json:"Q3"`
	Final    float64 `json:"FINAL"`
}

var DefaultDistribution = Distribution{Q1: 0.20, Halftime: 0.30, Q3: 0.20, Final: 0.30}

var distributionTolerance = decimal.New(1, -6)

// Validate checks every share is non-negative and the shares sum to 1.
func (d Distribution) Validate() error {
	sum := decimal.Zero
	for _, share := range []float64{d.Q1, d.Halftime, d.Q3, d.Final} {
		if share < 0 {
			return ErrInvalidDistribution
		}
		sum = sum.Add(decimal.NewFromFloat(share))
	}
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(distributionTolerance) {
		return ErrInvalidDistribution
	}
	return nil
}

// ForQuarter returns the share paid for quarter q, or zero outside 1..4.
func (d Distribution) ForQuarter(q int) float64 {
	switch q {
	case 1:
		return d.Q1
	case 2:
		return d.Halftime
	case 3:
		return d.Q3
	case 4:
		return d.Final
	}
	return 0
}
