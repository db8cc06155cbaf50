// Package trustindex holds the pure tier tables and formulas behind the
// platform's reputation score. Nothing here touches storage; callers feed in
// the current score and get a delta (or a ceiling) back.
package trustindex

import "math"

const (
	// MinScore and MaxScore bound every TrustIndex value on the platform.
	MinScore = 0
	MaxScore = 950

	// InitialScore is assigned to every account at signup.
	InitialScore = 400
)

// tier is a half-open band [Low, High) of scores. The top band additionally
// includes MaxScore itself.
type tier struct {
	Low, High int

	Alpha, Beta float64 // repayment / default coefficients
	Gain, Loss  int     // endorsement create / remove deltas
	Ceiling     int     // max eligible loan principal
}

var tiers = []tier{
	{0, 400, 0.05, 0.01, 20, 5, 500},
	{400, 500, 0.15, 0.02, 20, 5, 1000},
	{500, 600, 0.12, 0.05, 15, 8, 2000},
	{600, 750, 0.10, 0.08, 10, 10, 5000},
	{750, 850, 0.08, 0.10, 8, 15, 10000},
	{850, 900, 0.05, 0.12, 5, 20, 15000},
	{900, 950, 0.02, 0.15, 2, 30, 20000},
}

func tierFor(score int) tier {
	if score >= MaxScore {
		return tiers[len(tiers)-1]
	}
	if score < tiers[0].High {
		return tiers[0]
	}
	for _, t := range tiers {
		if score >= t.Low && score < t.High {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Clamp forces a score into the valid [MinScore, MaxScore] range.
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// EndorsementGain is the score gain for being endorsed. Accounts already at
// the cap gain nothing.
func EndorsementGain(current int) int {
	if current >= MaxScore {
		return 0
	}
	return tierFor(current).Gain
}

// EndorsementRemovalLoss is the score loss for having an endorsement removed.
// The loss grows with reputation but never takes the score below zero.
func EndorsementRemovalLoss(current int) int {
	if current <= MinScore {
		return 0
	}
	loss := tierFor(current).Loss
	if loss > current {
		return current
	}
	return loss
}

// RepaymentGain is the net score gain for a receiver who fully repays a loan.
// The returned value is already clamped against MaxScore, so callers can add
// it to the current score directly.
func RepaymentGain(current, principal, daysEarly, tenorDays int) int {
	alpha := tierFor(current).Alpha
	if current >= MaxScore {
		alpha = 0
	}
	base := alpha * float64(MaxScore-current) / 4
	timeliness := float64(daysEarly) / float64(tenorDays) * 2
	amountFactor := 1 + float64(principal)/40000

	total := int(math.Floor(base + timeliness + amountFactor))
	return Clamp(current+total) - current
}

// DefaultLoss is the score loss for a receiver who defaults. Capped at the
// current score so the result can be subtracted without going negative.
func DefaultLoss(current, principal, daysLate int) int {
	beta := tierFor(current).Beta
	if current <= MinScore {
		beta = 0
	}
	base := beta * float64(MaxScore-current) / 2
	latePenalty := float64(daysLate) / 7 * 2
	amountFactor := 1 + float64(principal)/20000

	total := int(math.Floor(base + latePenalty + amountFactor))
	if total > current {
		return current
	}
	return total
}

// EndorserImpact splits the receiver's delta evenly across all endorsers.
// Floor division; the rounding remainder is deliberately unallocated.
func EndorserImpact(receiverDelta, endorserCount int) int {
	if endorserCount <= 0 {
		return 0
	}
	return floorDiv(receiverDelta, endorserCount)
}

// GuarantorImpact is the guarantor's fixed half share of the receiver's delta.
func GuarantorImpact(receiverDelta int) int {
	return floorDiv(receiverDelta, 2)
}

// MaxLoanCeiling maps a score to the largest principal the account may borrow.
func MaxLoanCeiling(current int) int {
	return tierFor(Clamp(current)).Ceiling
}

// floorDiv rounds toward negative infinity, matching math.Floor on the
// real-valued quotient. Go's integer division truncates toward zero, which
// differs for negative deltas.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
