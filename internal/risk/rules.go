package risk

import "math"

// comparison decides how a rule's bound is matched against a ratio
type comparison int

const (
	atLeast comparison = iota // ratio >= bound
	atMost                    // ratio <= bound
)

// rule is one row of a threshold ladder
type rule struct {
	bound float64
	score float64
}

// ladder is an ordered rule table. Rows are evaluated top to bottom and the
// first match wins; tail scores any ratio that matched no row.
type ladder struct {
	cmp   comparison
	rules []rule
	tail  func(ratio float64) float64
}

func (l ladder) score(ratio float64) float64 {
	for _, r := range l.rules {
		switch l.cmp {
		case atLeast:
			if ratio >= r.bound {
				return r.score
			}
		case atMost:
			if ratio <= r.bound {
				return r.score
			}
		}
	}
	return l.tail(ratio)
}

func constant(v float64) func(float64) float64 {
	return func(float64) float64 { return v }
}

var emergencyFundLadder = ladder{
	cmp: atLeast,
	rules: []rule{
		{bound: 9, score: 100},
		{bound: 6, score: 85},
		{bound: 4, score: 65},
		{bound: 2, score: 40},
		{bound: 1, score: 20},
	},
	tail: constant(5),
}

var debtBurdenLadder = ladder{
	cmp: atMost,
	rules: []rule{
		{bound: 25, score: 100},
		{bound: 35, score: 80},
		{bound: 45, score: 55},
		{bound: 55, score: 30},
	},
	// Decays towards but never reaches a hard floor for very high ratios
	tail: func(pct float64) float64 { return math.Max(0, 20-pct/5) },
}

var savingsRateLadder = ladder{
	cmp: atLeast,
	rules: []rule{
		{bound: 30, score: 100},
		{bound: 20, score: 85},
		{bound: 15, score: 70},
		{bound: 10, score: 50},
		{bound: 5, score: 30},
	},
	tail: func(pct float64) float64 { return math.Min(25, pct*5) },
}

var lifeCoverLadder = ladder{
	cmp: atLeast,
	rules: []rule{
		{bound: 12, score: 100},
		{bound: 10, score: 85},
		{bound: 7, score: 65},
		{bound: 5, score: 45},
	},
	tail: func(years float64) float64 { return math.Min(40, years*8) },
}

var healthCoverLadder = ladder{
	cmp: atLeast,
	rules: []rule{
		{bound: 20, score: 100},
		{bound: 10, score: 85},
		{bound: 5, score: 65},
		{bound: 3, score: 45},
	},
	tail: func(lakh float64) float64 { return math.Min(40, lakh*12) },
}

var inflationLadder = ladder{
	cmp: atMost,
	rules: []rule{
		{bound: 10, score: 100},
		{bound: 20, score: 75},
		{bound: 30, score: 50},
	},
	tail: func(diff float64) float64 { return math.Max(15, 55-diff) },
}

// retirementLadder scales its bounds by the age-adjusted target ratio
func retirementLadder(targetRatio float64) ladder {
	return ladder{
		cmp: atLeast,
		rules: []rule{
			{bound: targetRatio * 1.2, score: 100},
			{bound: targetRatio, score: 80},
			{bound: targetRatio * 0.6, score: 55},
			{bound: targetRatio * 0.3, score: 35},
		},
		tail: func(ratio float64) float64 { return math.Min(30, ratio*80) },
	}
}
