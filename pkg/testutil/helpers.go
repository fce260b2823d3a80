// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/loan-estimator/internal/estimate"
	"github.com/iwvelando/loan-estimator/internal/scenario"
)

// FindOutcome finds an outcome by applicant name in the outcomes slice.
// Returns a pointer to the outcome if found, nil otherwise.
func FindOutcome(outcomes []scenario.Outcome, name string) *scenario.Outcome {
	for i := range outcomes {
		if outcomes[i].Name == name {
			return &outcomes[i]
		}
	}
	return nil
}

// SampleOutcomes returns one outcome per decision, built from fixed requests.
// It panics if the engine rejects them.
func SampleOutcomes() []scenario.Outcome {
	requests := []struct {
		name string
		req  estimate.Request
	}{
		{"eligible", estimate.Request{AnnualIncome: 120000, MonthlyDebts: 500, CreditScore: 780, LoanAmount: 200000, InterestRate: 5, TermYears: 30}},
		{"maybe", estimate.Request{AnnualIncome: 12000, MonthlyDebts: 435, CreditScore: 700, TermYears: 1}},
		{"not yet", estimate.Request{AnnualIncome: 75000, MonthlyDebts: 1500, CreditScore: 700, LoanAmount: 300000, InterestRate: 6.5, TermYears: 30}},
	}

	outcomes := make([]scenario.Outcome, 0, len(requests))
	for _, r := range requests {
		result, err := estimate.Estimate(r.req)
		if err != nil {
			panic(err)
		}
		outcomes = append(outcomes, scenario.Outcome{Name: r.name, Result: result})
	}
	return outcomes
}
