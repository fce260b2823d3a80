// Package optimizer searches for the largest loan amount that keeps an
// applicant at or above a target decision.
package optimizer

import (
	"fmt"
	"math"

	"github.com/iwvelando/loan-estimator/internal/estimate"
	"github.com/iwvelando/loan-estimator/pkg/format"
	"github.com/iwvelando/loan-estimator/pkg/loans"
	"github.com/iwvelando/loan-estimator/pkg/mathutil"
	"github.com/iwvelando/loan-estimator/pkg/optimization"
	"go.uber.org/zap"
)

const (
	// Search bounds in cents.
	initialUpperCents int64 = 1_000_000
	maxLoanCents      int64 = 100_000_000_000_000

	maxIterations = 200
)

// Runner performs the loan amount search.
type Runner struct {
	logger *zap.Logger
}

// NewRunner constructs a Runner.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

type evaluation struct {
	cents  int64
	result estimate.Result
	err    error
}

// reaches is false for an amount the engine rejects: once the payment or DTI
// overflows, every larger amount overflows too.
func (e evaluation) reaches(target estimate.Decision) bool {
	return e.err == nil && e.result.Decision.Rank() >= target.Rank()
}

// MaxLoanAmount finds, to the cent, the largest loan amount for which the
// request still earns target. Every other field of req is held fixed. A DTI
// that misses target even with no loan is reported through Notes with
// Converged false.
func (r *Runner) MaxLoanAmount(req estimate.Request, target estimate.Decision) (optimization.Summary, error) {
	if !target.Valid() || target == estimate.DecisionNotYet {
		return optimization.Summary{}, fmt.Errorf("target decision must be %s or %s, got %q",
			estimate.DecisionEligible, estimate.DecisionMaybe, target)
	}
	if err := estimate.Validate(req); err != nil {
		return optimization.Summary{}, err
	}

	iterations := 0
	evaluate := func(cents int64) evaluation {
		iterations++
		probe := req
		probe.LoanAmount = float64(cents) / 100
		result, err := estimate.Estimate(probe)
		return evaluation{cents: cents, result: result, err: err}
	}

	summary := optimization.Summary{Target: target, Original: req.LoanAmount}
	lower := evaluate(0)
	if lower.err != nil {
		return optimization.Summary{}, lower.err
	}
	if !lower.reaches(target) {
		summary.Notes = append(summary.Notes, fmt.Sprintf(
			"DTI of %s without any loan already misses %s", format.Percent(lower.result.DTIPercent), target))
		return finish(summary, req, lower, iterations, false), nil
	}

	// Grow the upper bound until it fails or hits the cap.
	upper := evaluate(initialUpperCents)
	for upper.reaches(target) {
		lower = upper
		if upper.cents >= maxLoanCents {
			summary.Notes = append(summary.Notes,
				"search capped at "+format.Currency(float64(maxLoanCents)/100))
			return finish(summary, req, lower, iterations, false), nil
		}
		next := upper.cents * 2
		if next > maxLoanCents {
			next = maxLoanCents
		}
		upper = evaluate(next)
	}

	for upper.cents-lower.cents > 1 && iterations < maxIterations {
		mid := evaluate(lower.cents + (upper.cents-lower.cents)/2)
		if mid.reaches(target) {
			lower = mid
		} else {
			upper = mid
		}
	}

	converged := upper.cents-lower.cents <= 1
	if !converged {
		summary.Notes = append(summary.Notes, fmt.Sprintf("stopped after %d evaluations", iterations))
	}

	r.logger.Debug(fmt.Sprintf("largest loan for %s is %.2f after %d evaluations",
		target, float64(lower.cents)/100, iterations),
		zap.String("op", "optimizer.MaxLoanAmount"),
	)

	return finish(summary, req, lower, iterations, converged), nil
}

func finish(summary optimization.Summary, req estimate.Request, best evaluation, iterations int, converged bool) optimization.Summary {
	summary.Value = float64(best.cents) / 100
	summary.MonthlyPayment = best.result.MonthlyPayment
	totalInterest := loans.TotalInterest(summary.Value, req.InterestRate, loans.TermMonths(req.TermYears))
	if math.IsInf(totalInterest, 0) || math.IsNaN(totalInterest) {
		summary.Notes = append(summary.Notes, "total interest is too large to report")
		totalInterest = 0
	}
	summary.TotalInterest = mathutil.Round(totalInterest)
	summary.DTIPercent = best.result.DTIPercent
	summary.Decision = best.result.Decision
	summary.Iterations = iterations
	summary.Converged = converged
	return summary
}
