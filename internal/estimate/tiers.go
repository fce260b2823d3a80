package estimate

import (
	"math"

	"github.com/iwvelando/loan-estimator/pkg/constants"
)

// TierLabel names a credit tier.
type TierLabel string

const (
	TierExcellent TierLabel = "Excellent"
	TierGood      TierLabel = "Good"
	TierFair      TierLabel = "Fair"
	TierPoor      TierLabel = "Poor"
)

// CreditTier maps a band of credit scores to the highest debt-to-income
// ratio accepted for it.
type CreditTier struct {
	Label    TierLabel
	MinScore int
	MaxDTI   float64
}

// maybeBand is how far above MaxDTI a ratio may sit and still be a Maybe.
const maybeBand = 0.05

// Ordered from the highest threshold down; the first tier whose MinScore is
// reached wins.
var creditTiers = [...]CreditTier{
	{Label: TierExcellent, MinScore: 760, MaxDTI: 0.45},
	{Label: TierGood, MinScore: 700, MaxDTI: 0.41},
	{Label: TierFair, MinScore: 640, MaxDTI: 0.36},
	{Label: TierPoor, MinScore: math.MinInt, MaxDTI: 0.30},
}

// LookupTier returns the credit tier for a score.
func LookupTier(score int) CreditTier {
	for _, tier := range creditTiers {
		if score >= tier.MinScore {
			return tier
		}
	}
	return creditTiers[len(creditTiers)-1]
}

// Tiers returns a copy of the tier table, highest threshold first. The Poor
// tier reports the lowest accepted credit score as its MinScore.
func Tiers() []CreditTier {
	tiers := make([]CreditTier, len(creditTiers))
	copy(tiers, creditTiers[:])
	tiers[len(tiers)-1].MinScore = constants.MinCreditScore
	return tiers
}

// MaybeLimit is the highest ratio that still earns a Maybe for this tier.
func (t CreditTier) MaybeLimit() float64 {
	return t.MaxDTI + maybeBand
}
