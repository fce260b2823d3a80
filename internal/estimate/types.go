// Package estimate implements the loan affordability estimator: an
// amortized payment, a debt-to-income ratio, a credit tier lookup, and the
// resulting eligibility decision with its reasons and tips.
package estimate

import (
	"fmt"
	"strings"
)

// Request holds the applicant inputs for one estimate.
type Request struct {
	AnnualIncome float64 `json:"annualIncome" yaml:"annualIncome"`
	MonthlyDebts float64 `json:"monthlyDebts" yaml:"monthlyDebts"`
	CreditScore  int     `json:"creditScore" yaml:"creditScore"`
	LoanAmount   float64 `json:"loanAmount" yaml:"loanAmount"`
	InterestRate float64 `json:"interestRate" yaml:"interestRate"` // annual percent, 6.5 means 6.5%
	TermYears    int     `json:"termYears" yaml:"termYears"`
}

// Result is the outcome of one estimate. Currency and percentage values are
// rounded to two decimals.
type Result struct {
	MonthlyIncome  float64   `json:"monthlyIncome"`
	MonthlyPayment float64   `json:"monthlyPayment"`
	DTIPercent     float64   `json:"dtiPercent"`
	CreditTier     TierLabel `json:"creditTier"`
	Decision       Decision  `json:"decision"`
	Reasons        []string  `json:"reasons"`
	Tips           []string  `json:"tips"`
}

// Decision is the affordability verdict.
type Decision string

const (
	DecisionEligible Decision = "Eligible"
	DecisionMaybe    Decision = "Maybe"
	DecisionNotYet   Decision = "NotYet"
)

// Valid reports whether d is one of the known decisions.
func (d Decision) Valid() bool {
	switch d {
	case DecisionEligible, DecisionMaybe, DecisionNotYet:
		return true
	}
	return false
}

func (d Decision) String() string {
	return string(d)
}

// Rank orders decisions from least to most favourable.
func (d Decision) Rank() int {
	switch d {
	case DecisionEligible:
		return 2
	case DecisionMaybe:
		return 1
	}
	return 0
}

// ParseDecision matches a decision name case-insensitively.
func ParseDecision(value string) (Decision, error) {
	for _, d := range []Decision{DecisionEligible, DecisionMaybe, DecisionNotYet} {
		if strings.EqualFold(strings.TrimSpace(value), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown decision %q", value)
}
