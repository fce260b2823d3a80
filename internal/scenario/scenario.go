// Package scenario evaluates a set of named applicant profiles loaded from
// YAML.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/loan-estimator/internal/estimate"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the document layout of a batch file.
type File struct {
	Applicants []Applicant `yaml:"applicants"`
}

// Applicant is one named estimate request.
type Applicant struct {
	Name             string `yaml:"name"`
	estimate.Request `yaml:",inline"`
}

// Outcome pairs an applicant name with its estimate.
type Outcome struct {
	Name   string          `json:"name"`
	Result estimate.Result `json:"result"`
}

// LoadFile reads applicants from the YAML file at path.
func LoadFile(path string) ([]Applicant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open applicants file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Load(f)
}

// Load decodes applicants from YAML. Unknown keys are rejected and every
// applicant needs a unique, non-empty name.
func Load(r io.Reader) ([]Applicant, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("applicants file is empty")
		}
		return nil, fmt.Errorf("failed to parse applicants: %w", err)
	}

	if len(file.Applicants) == 0 {
		return nil, errors.New("no applicants defined")
	}

	seen := make(map[string]struct{}, len(file.Applicants))
	for i := range file.Applicants {
		name := strings.TrimSpace(file.Applicants[i].Name)
		if name == "" {
			return nil, fmt.Errorf("applicant %d has no name", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate applicant name %q", name)
		}
		seen[name] = struct{}{}
		file.Applicants[i].Name = name
	}

	return file.Applicants, nil
}

// Run estimates every applicant in order. The first invalid applicant stops
// the run and is named in the returned error.
func Run(logger *zap.Logger, applicants []Applicant) ([]Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	outcomes := make([]Outcome, 0, len(applicants))
	for _, applicant := range applicants {
		result, err := estimate.Estimate(applicant.Request)
		if err != nil {
			return nil, fmt.Errorf("applicant %s: %w", applicant.Name, err)
		}

		logger.Debug(fmt.Sprintf("applicant %s: %s at %.2f%% DTI", applicant.Name, result.Decision, result.DTIPercent),
			zap.String("op", "scenario.Run"),
		)
		outcomes = append(outcomes, Outcome{Name: applicant.Name, Result: result})
	}

	return outcomes, nil
}
