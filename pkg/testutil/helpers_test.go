package testutil

import (
	"testing"

	"github.com/iwvelando/loan-estimator/internal/estimate"
)

func TestFindOutcome(t *testing.T) {
	outcomes := SampleOutcomes()

	tests := []struct {
		name     string
		expected estimate.Decision
	}{
		{"eligible", estimate.DecisionEligible},
		{"maybe", estimate.DecisionMaybe},
		{"not yet", estimate.DecisionNotYet},
	}

	for _, tt := range tests {
		outcome := FindOutcome(outcomes, tt.name)
		if outcome == nil {
			t.Fatalf("FindOutcome(%q) returned nil", tt.name)
		}
		if outcome.Result.Decision != tt.expected {
			t.Errorf("outcome %q decision = %s, expected %s", tt.name, outcome.Result.Decision, tt.expected)
		}
	}

	if FindOutcome(outcomes, "absent") != nil {
		t.Error("expected nil for unknown name")
	}
	if FindOutcome(nil, "eligible") != nil {
		t.Error("expected nil for empty slice")
	}
}

func TestFindOutcomeReturnsPointerIntoSlice(t *testing.T) {
	outcomes := SampleOutcomes()
	found := FindOutcome(outcomes, "maybe")
	found.Result.DTIPercent = -1

	if outcomes[1].Result.DTIPercent != -1 {
		t.Error("expected pointer into the original slice")
	}
}
