// Package optimization provides shared data structures for optimization results.
package optimization

import "github.com/iwvelando/loan-estimator/internal/estimate"

// Summary captures the result of a largest-loan search.
type Summary struct {
	Target         estimate.Decision `json:"target"`
	Original       float64           `json:"original"`
	Value          float64           `json:"value"`
	MonthlyPayment float64           `json:"monthlyPayment"`
	TotalInterest  float64           `json:"totalInterest"`
	DTIPercent     float64           `json:"dtiPercent"`
	Decision       estimate.Decision `json:"decision"`
	Iterations     int               `json:"iterations"`
	Converged      bool              `json:"converged"`
	Notes          []string          `json:"notes,omitempty"`
}

// Headroom is how much the searched loan amount exceeds the requested one.
// It is negative when the request has to shrink to reach the target.
func (s Summary) Headroom() float64 {
	return s.Value - s.Original
}
