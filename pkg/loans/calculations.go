// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/loan-estimator/pkg/constants"
)

// MonthlyRate converts an annual percentage rate (6.5 means 6.5%) into the
// periodic monthly rate.
func MonthlyRate(annualInterestRate float64) float64 {
	return annualInterestRate / constants.PercentageMultiplier / constants.MonthsPerYear
}

// TermMonths returns the number of monthly installments in a term of years.
// It is a float64 so that very long terms cannot overflow.
func TermMonths(termYears int) float64 {
	return float64(termYears) * constants.MonthsPerYear
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate, termMonths float64) float64 {
	periodicInterestRate := MonthlyRate(annualInterestRate)
	if periodicInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / termMonths
	}

	power := math.Pow(1.00+periodicInterestRate, termMonths)
	if power == 1.00 {
		// Rate too small to register in float64.
		return principal / termMonths
	}
	if math.IsInf(power, 1) {
		// Very long terms converge on interest-only payments.
		return principal * periodicInterestRate
	}
	return principal * (periodicInterestRate * power) / (power - 1.00)
}

// TotalInterest returns the interest paid over the full term when every
// installment equals CalculateMonthlyPayment.
func TotalInterest(principal, annualInterestRate, termMonths float64) float64 {
	payment := CalculateMonthlyPayment(principal, annualInterestRate, termMonths)
	return payment*termMonths - principal
}
