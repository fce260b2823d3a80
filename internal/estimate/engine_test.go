package estimate

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func mustEstimate(t *testing.T, req Request) Result {
	t.Helper()
	result, err := Estimate(req)
	if err != nil {
		t.Fatalf("Estimate(%+v) returned error: %v", req, err)
	}
	return result
}

func TestEstimateNotYetExample(t *testing.T) {
	result := mustEstimate(t, Request{
		AnnualIncome: 75000,
		MonthlyDebts: 1500,
		CreditScore:  700,
		LoanAmount:   300000,
		InterestRate: 6.5,
		TermYears:    30,
	})

	expected := Result{
		MonthlyIncome:  6250.00,
		MonthlyPayment: 1896.20,
		DTIPercent:     54.34,
		CreditTier:     TierGood,
		Decision:       DecisionNotYet,
		Reasons:        []string{"DTI 54.34% is above your tier limit (41%)."},
		Tips: []string{
			"Reduce monthly debts or increase income.",
			"Consider a smaller loan amount or longer term.",
			"Work on improving credit score for better thresholds.",
		},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Estimate() = %+v, expected %+v", result, expected)
	}
}

func TestEstimateEligibleExample(t *testing.T) {
	result := mustEstimate(t, Request{
		AnnualIncome: 120000,
		MonthlyDebts: 500,
		CreditScore:  780,
		LoanAmount:   200000,
		InterestRate: 5.0,
		TermYears:    30,
	})

	expected := Result{
		MonthlyIncome:  10000.00,
		MonthlyPayment: 1073.64,
		DTIPercent:     15.74,
		CreditTier:     TierExcellent,
		Decision:       DecisionEligible,
		Reasons: []string{
			"DTI 15.74% is within your tier limit (45%).",
			"Credit tier is Excellent (score 780).",
		},
		Tips: []string{},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Estimate() = %+v, expected %+v", result, expected)
	}
}

func TestEstimateLowIncomeIsNotTreatedAsZero(t *testing.T) {
	result := mustEstimate(t, Request{
		AnnualIncome: 1,
		MonthlyDebts: 0,
		CreditScore:  700,
		LoanAmount:   1,
		InterestRate: 0,
		TermYears:    1,
	})
	if result.MonthlyIncome != 0.08 {
		t.Errorf("expected monthly income 0.08, got %v", result.MonthlyIncome)
	}
	if result.MonthlyPayment != 0.08 {
		t.Errorf("expected monthly payment 0.08, got %v", result.MonthlyPayment)
	}
	if result.DTIPercent != 100 {
		t.Errorf("expected DTI of 100%%, got %v", result.DTIPercent)
	}

	// With debts the ratio is computed from income rather than pinned at 100%.
	result = mustEstimate(t, Request{
		AnnualIncome: 1,
		MonthlyDebts: 1,
		CreditScore:  700,
		LoanAmount:   1,
		InterestRate: 0,
		TermYears:    1,
	})
	if math.Abs(result.DTIPercent-1300) > 0.01 {
		t.Errorf("expected DTI of 1300%%, got %v", result.DTIPercent)
	}
	if result.Decision != DecisionNotYet {
		t.Errorf("expected NotYet, got %s", result.Decision)
	}
}

func TestEstimateZeroIncomeForcesFullDTI(t *testing.T) {
	requests := []Request{
		{AnnualIncome: 0, MonthlyDebts: 0, CreditScore: 850, LoanAmount: 0, InterestRate: 0, TermYears: 1},
		{AnnualIncome: 0, MonthlyDebts: 5000, CreditScore: 300, LoanAmount: 1000000, InterestRate: 9.9, TermYears: 40},
		{AnnualIncome: 0, MonthlyDebts: 12.5, CreditScore: 700, LoanAmount: 5000, InterestRate: 0, TermYears: 5},
	}

	for _, req := range requests {
		result := mustEstimate(t, req)
		if result.DTIPercent != 100 {
			t.Errorf("Estimate(%+v) DTI = %v, expected 100", req, result.DTIPercent)
		}
		if result.MonthlyIncome != 0 {
			t.Errorf("Estimate(%+v) monthly income = %v, expected 0", req, result.MonthlyIncome)
		}
		if result.Decision != DecisionNotYet {
			t.Errorf("Estimate(%+v) decision = %s, expected NotYet", req, result.Decision)
		}
	}
}

func TestEstimateZeroRatePayment(t *testing.T) {
	tests := []struct {
		loanAmount float64
		termYears  int
		expected   float64
	}{
		{loanAmount: 12000, termYears: 1, expected: 1000},
		{loanAmount: 300000, termYears: 30, expected: 833.33},
		{loanAmount: 100, termYears: 3, expected: 2.78},
	}

	for _, tt := range tests {
		result := mustEstimate(t, Request{
			AnnualIncome: 100000,
			CreditScore:  700,
			LoanAmount:   tt.loanAmount,
			TermYears:    tt.termYears,
		})
		if result.MonthlyPayment != tt.expected {
			t.Errorf("zero-rate payment for %.2f over %d years = %v, expected %v",
				tt.loanAmount, tt.termYears, result.MonthlyPayment, tt.expected)
		}
	}
}

// With annual income 12000, no loan and zero rate, the ratio is monthlyDebts/1000.
func boundaryRequest(score int, monthlyDebts float64) Request {
	return Request{
		AnnualIncome: 12000,
		MonthlyDebts: monthlyDebts,
		CreditScore:  score,
		LoanAmount:   0,
		InterestRate: 0,
		TermYears:    1,
	}
}

func TestEstimateDecisionBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		debts    float64
		expected Decision
	}{
		{"Excellent at limit", 800, 450, DecisionEligible},
		{"Excellent just above limit", 800, 450.01, DecisionMaybe},
		{"Excellent at band edge", 800, 500, DecisionMaybe},
		{"Excellent past band", 800, 500.01, DecisionNotYet},
		{"Good at limit", 720, 410, DecisionEligible},
		{"Good at band edge", 720, 460, DecisionMaybe},
		{"Good past band", 720, 460.01, DecisionNotYet},
		{"Fair at limit", 650, 360, DecisionEligible},
		{"Fair at band edge", 650, 410, DecisionMaybe},
		{"Fair past band", 650, 410.01, DecisionNotYet},
		{"Poor at limit", 500, 300, DecisionEligible},
		{"Poor at band edge", 500, 350, DecisionMaybe},
		{"Poor past band", 500, 350.01, DecisionNotYet},
		{"No debts", 300, 0, DecisionEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mustEstimate(t, boundaryRequest(tt.score, tt.debts))
			if result.Decision != tt.expected {
				t.Errorf("decision = %s (DTI %.4f%%), expected %s", result.Decision, result.DTIPercent, tt.expected)
			}
		})
	}
}

func TestEstimateMaybeReasonsAndTips(t *testing.T) {
	result := mustEstimate(t, boundaryRequest(700, 435))

	expectedReasons := []string{"DTI 43.50% is slightly above your tier limit (41%)."}
	expectedTips := []string{
		"Pay down monthly debts or consider a smaller loan amount.",
		"Improving credit score may increase your allowed DTI.",
	}
	if result.Decision != DecisionMaybe {
		t.Fatalf("expected Maybe, got %s", result.Decision)
	}
	if !reflect.DeepEqual(result.Reasons, expectedReasons) {
		t.Errorf("reasons = %q, expected %q", result.Reasons, expectedReasons)
	}
	if !reflect.DeepEqual(result.Tips, expectedTips) {
		t.Errorf("tips = %q, expected %q", result.Tips, expectedTips)
	}
}

func TestEstimateEligibleHasEmptyTips(t *testing.T) {
	result := mustEstimate(t, boundaryRequest(640, 100))
	if result.Decision != DecisionEligible {
		t.Fatalf("expected Eligible, got %s", result.Decision)
	}
	if result.Tips == nil || len(result.Tips) != 0 {
		t.Errorf("expected empty non-nil tips, got %#v", result.Tips)
	}
	if len(result.Reasons) != 2 || result.Reasons[1] != "Credit tier is Fair (score 640)." {
		t.Errorf("unexpected reasons: %q", result.Reasons)
	}
}

func TestEstimateNonNegativeOutputs(t *testing.T) {
	incomes := []float64{0, 1, 36000, 250000}
	debts := []float64{0, 99.99, 2500}
	loanAmounts := []float64{0, 1, 450000}
	rates := []float64{0, 0.01, 7.25, 30}
	terms := []int{1, 15, 30, 100}

	for _, income := range incomes {
		for _, debt := range debts {
			for _, loan := range loanAmounts {
				for _, rate := range rates {
					for _, term := range terms {
						req := Request{
							AnnualIncome: income,
							MonthlyDebts: debt,
							CreditScore:  700,
							LoanAmount:   loan,
							InterestRate: rate,
							TermYears:    term,
						}
						result := mustEstimate(t, req)
						if result.MonthlyPayment < 0 || result.DTIPercent < 0 {
							t.Fatalf("negative output for %+v: %+v", req, result)
						}
						if !result.Decision.Valid() {
							t.Fatalf("invalid decision for %+v: %q", req, result.Decision)
						}
					}
				}
			}
		}
	}
}

func TestEstimateDTIMonotonicInDebts(t *testing.T) {
	previous := -1.0
	for debts := 0.0; debts <= 5000; debts += 250 {
		result := mustEstimate(t, Request{
			AnnualIncome: 60000,
			MonthlyDebts: debts,
			CreditScore:  700,
			LoanAmount:   150000,
			InterestRate: 4.5,
			TermYears:    15,
		})
		if result.DTIPercent < previous {
			t.Fatalf("DTI decreased from %v to %v when debts rose to %v", previous, result.DTIPercent, debts)
		}
		previous = result.DTIPercent
	}
}

func TestEstimateRejectsInvalidInput(t *testing.T) {
	_, err := Estimate(Request{AnnualIncome: -1, CreditScore: 700, TermYears: 30})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "annualIncome" {
		t.Errorf("unexpected validation errors: %v", verrs)
	}
}

func TestEstimateRejectsOverflowingInputs(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{
			name:  "debts overflow DTI",
			req:   Request{AnnualIncome: 12, MonthlyDebts: 1e307, CreditScore: 700, TermYears: 30},
			field: "monthlyDebts",
		},
		{
			name:  "rate overflows payment",
			req:   Request{AnnualIncome: 120000, CreditScore: 700, LoanAmount: 1e308, InterestRate: 1e300, TermYears: 30},
			field: "loanAmount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Estimate(tt.req)
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v (result %+v)", err, result)
			}
			if len(verrs) != 1 || verrs[0].Field != tt.field {
				t.Errorf("unexpected validation errors: %v", verrs)
			}
		})
	}
}

func TestEstimateHugeFiniteDTI(t *testing.T) {
	result := mustEstimate(t, Request{AnnualIncome: 12, MonthlyDebts: 1e300, CreditScore: 700, TermYears: 30})
	if math.IsInf(result.DTIPercent, 0) || math.IsNaN(result.DTIPercent) {
		t.Fatalf("expected a finite DTI, got %v", result.DTIPercent)
	}
	if result.Decision != DecisionNotYet {
		t.Errorf("expected NotYet, got %s", result.Decision)
	}
}
