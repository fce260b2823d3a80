package estimate

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/loan-estimator/pkg/constants"
)

// ValidationError describes one request field that violates its range.
type ValidationError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Constraint
}

// ValidationErrors collects every violation found in a request, in field order.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fieldErr := range e {
		msgs = append(msgs, fieldErr.Error())
	}
	return strings.Join(msgs, "; ")
}

const (
	constraintNonNegative = "must be non-negative"
	constraintFinite      = "must be a finite number"
	constraintTerm        = "must be at least 1"
)

var constraintCreditScore = fmt.Sprintf("must be between %d and %d",
	constants.MinCreditScore, constants.MaxCreditScore)

// Validate checks the request against the accepted input ranges. It returns
// nil or a ValidationErrors listing every offending field.
func Validate(req Request) error {
	var errs ValidationErrors

	checkAmount := func(field string, val float64) {
		switch {
		case math.IsNaN(val) || math.IsInf(val, 0):
			errs = append(errs, ValidationError{Field: field, Constraint: constraintFinite})
		case val < 0:
			errs = append(errs, ValidationError{Field: field, Constraint: constraintNonNegative})
		}
	}

	checkAmount("annualIncome", req.AnnualIncome)
	checkAmount("monthlyDebts", req.MonthlyDebts)
	if req.CreditScore < constants.MinCreditScore || req.CreditScore > constants.MaxCreditScore {
		errs = append(errs, ValidationError{Field: "creditScore", Constraint: constraintCreditScore})
	}
	checkAmount("loanAmount", req.LoanAmount)
	checkAmount("interestRate", req.InterestRate)
	if req.TermYears < 1 {
		errs = append(errs, ValidationError{Field: "termYears", Constraint: constraintTerm})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
