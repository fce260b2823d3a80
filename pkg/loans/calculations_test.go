package loans

import (
	"math"
	"testing"

	"github.com/iwvelando/loan-estimator/pkg/mathutil"
)

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name               string
		principal          float64
		annualInterestRate float64
		termMonths         float64
		expected           float64 // rounded to cents
	}{
		{
			name:               "30-year mortgage at 6.5%",
			principal:          300000,
			annualInterestRate: 6.5,
			termMonths:         360,
			expected:           1896.20,
		},
		{
			name:               "30-year mortgage at 5%",
			principal:          200000,
			annualInterestRate: 5.0,
			termMonths:         360,
			expected:           1073.64,
		},
		{
			name:               "High interest loan",
			principal:          10000,
			annualInterestRate: 18.0,
			termMonths:         36,
			expected:           361.52,
		},
		{
			name:               "Zero interest loan",
			principal:          12000,
			annualInterestRate: 0.0,
			termMonths:         60,
			expected:           200.00,
		},
		{
			name:               "Zero principal",
			principal:          0,
			annualInterestRate: 7.0,
			termMonths:         120,
			expected:           0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := CalculateMonthlyPayment(tt.principal, tt.annualInterestRate, tt.termMonths)
			if got := mathutil.Round(payment); got != tt.expected {
				t.Errorf("CalculateMonthlyPayment() = %.4f (rounded %.2f), expected %.2f", payment, got, tt.expected)
			}
		})
	}
}

func TestCalculateMonthlyPaymentZeroRateIsExactDivision(t *testing.T) {
	principal := 1.0
	termMonths := TermMonths(1)
	if got := CalculateMonthlyPayment(principal, 0, termMonths); got != principal/12 {
		t.Errorf("expected %v, got %v", principal/12, got)
	}
}

func TestCalculateMonthlyPaymentOverflowingTerm(t *testing.T) {
	payment := CalculateMonthlyPayment(100000, 12, 1_000_000)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		t.Fatalf("expected finite payment, got %v", payment)
	}
	// 1% per month interest-only
	if math.Abs(payment-1000) > 1e-6 {
		t.Errorf("expected interest-only payment of 1000, got %v", payment)
	}
}

func TestTotalInterest(t *testing.T) {
	if got := TotalInterest(12000, 0, 60); got != 0 {
		t.Errorf("expected no interest on zero-rate loan, got %v", got)
	}

	total := TotalInterest(300000, 6.5, 360)
	if total < 382000 || total > 383000 {
		t.Errorf("expected total interest around 382,633, got %.2f", total)
	}
}

func TestTermMonthsAndMonthlyRate(t *testing.T) {
	if got := TermMonths(30); got != 360 {
		t.Errorf("TermMonths(30) = %v, expected 360", got)
	}
	if got := MonthlyRate(12); math.Abs(got-0.01) > 1e-12 {
		t.Errorf("MonthlyRate(12) = %v, expected 0.01", got)
	}
}

func TestCalculateMonthlyPaymentNegligibleRate(t *testing.T) {
	payment := CalculateMonthlyPayment(1200, 1e-15, 12)
	if payment != 100 {
		t.Errorf("expected straight-line payment of 100, got %v", payment)
	}
}
