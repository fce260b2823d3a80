package estimate

import (
	"fmt"
	"math"

	"github.com/iwvelando/loan-estimator/pkg/constants"
	"github.com/iwvelando/loan-estimator/pkg/loans"
	"github.com/iwvelando/loan-estimator/pkg/mathutil"
)

const (
	tipPayDownOrShrink  = "Pay down monthly debts or consider a smaller loan amount."
	tipScoreRaisesLimit = "Improving credit score may increase your allowed DTI."
	tipReduceDebts      = "Reduce monthly debts or increase income."
	tipSmallerOrLonger  = "Consider a smaller loan amount or longer term."
	tipImproveScore     = "Work on improving credit score for better thresholds."
)

const (
	constraintFinitePayment = "is too large to produce a finite monthly payment"
	constraintFiniteDTI     = "is too large to produce a finite debt-to-income ratio"
)

// Estimate validates req and computes its affordability result. Any range
// violation is returned as ValidationErrors, as are inputs large enough to
// overflow the payment or the DTI; a returned Result is always finite.
func Estimate(req Request) (Result, error) {
	if err := Validate(req); err != nil {
		return Result{}, err
	}
	return evaluate(req)
}

func evaluate(req Request) (Result, error) {
	monthlyIncome := req.AnnualIncome / constants.MonthsPerYear
	monthlyPayment := loans.CalculateMonthlyPayment(req.LoanAmount, req.InterestRate, loans.TermMonths(req.TermYears))
	if math.IsInf(monthlyPayment, 0) || math.IsNaN(monthlyPayment) {
		return Result{}, ValidationErrors{{Field: "loanAmount", Constraint: constraintFinitePayment}}
	}

	totalMonthlyDebt := req.MonthlyDebts + monthlyPayment
	dti := 1.0
	if monthlyIncome > 0 {
		dti = totalMonthlyDebt / monthlyIncome
	}
	dtiPercent := mathutil.ToPercent(dti)
	if math.IsInf(dtiPercent, 0) || math.IsNaN(dtiPercent) {
		return Result{}, ValidationErrors{{Field: "monthlyDebts", Constraint: constraintFiniteDTI}}
	}

	tier := LookupTier(req.CreditScore)
	dtiText := mathutil.FormatFixed(dtiPercent, constants.DecimalPlaces)
	limitText := mathutil.FormatFixed(mathutil.ToPercent(tier.MaxDTI), 0)

	result := Result{
		MonthlyIncome:  mathutil.Round(monthlyIncome),
		MonthlyPayment: mathutil.Round(monthlyPayment),
		DTIPercent:     mathutil.Round(dtiPercent),
		CreditTier:     tier.Label,
		Reasons:        []string{},
		Tips:           []string{},
	}

	switch {
	case mathutil.AtMostSum(dti, tier.MaxDTI):
		result.Decision = DecisionEligible
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("DTI %s%% is within your tier limit (%s%%).", dtiText, limitText),
			fmt.Sprintf("Credit tier is %s (score %d).", tier.Label, req.CreditScore),
		)
	case mathutil.AtMostSum(dti, tier.MaxDTI, maybeBand):
		result.Decision = DecisionMaybe
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("DTI %s%% is slightly above your tier limit (%s%%).", dtiText, limitText))
		result.Tips = append(result.Tips, tipPayDownOrShrink, tipScoreRaisesLimit)
	default:
		result.Decision = DecisionNotYet
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("DTI %s%% is above your tier limit (%s%%).", dtiText, limitText))
		result.Tips = append(result.Tips, tipReduceDebts, tipSmallerOrLonger, tipImproveScore)
	}

	return result, nil
}
