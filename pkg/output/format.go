// Package output provides utilities for formatting and displaying estimate results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-estimator/internal/scenario"
	"github.com/iwvelando/loan-estimator/pkg/constants"
	"github.com/iwvelando/loan-estimator/pkg/format"
)

// listSeparator joins reasons and tips inside a single CSV cell.
const listSeparator = "; "

// Write renders outcomes in the named format.
func Write(w io.Writer, outputFormat string, outcomes []scenario.Outcome) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, outcomes)
	case constants.OutputFormatCSV:
		return CsvFormat(w, outcomes)
	case constants.OutputFormatJSON:
		return JSONFormat(w, outcomes)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, outcomes []scenario.Outcome) error {
	for i, outcome := range outcomes {
		result := outcome.Result
		lines := []string{
			"--- Estimate for " + outcome.Name + " ---\n",
			"Monthly income  | " + format.Currency(result.MonthlyIncome) + "\n",
			"Monthly payment | " + format.Currency(result.MonthlyPayment) + "\n",
			"DTI             | " + format.Percent(result.DTIPercent) + "\n",
			"Credit tier     | " + string(result.CreditTier) + "\n",
			"Decision        | " + string(result.Decision) + "\n",
		}
		lines = append(lines, bulletList("Reasons", result.Reasons)...)
		lines = append(lines, bulletList("Tips", result.Tips)...)
		if i < len(outcomes)-1 {
			lines = append(lines, "\n")
		}

		for _, line := range lines {
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func bulletList(title string, items []string) []string {
	if len(items) == 0 {
		return nil
	}
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, title+":\n")
	for _, item := range items {
		lines = append(lines, "  - "+item+"\n")
	}
	return lines
}

// CsvFormat outputs in comma-separated value format, one row per outcome.
func CsvFormat(w io.Writer, outcomes []scenario.Outcome) error {
	cw := csv.NewWriter(w)
	header := []string{"name", "monthlyIncome", "monthlyPayment", "dtiPercent", "creditTier", "decision", "reasons", "tips"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, outcome := range outcomes {
		result := outcome.Result
		record := []string{
			outcome.Name,
			formatAmount(result.MonthlyIncome),
			formatAmount(result.MonthlyPayment),
			formatAmount(result.DTIPercent),
			string(result.CreditTier),
			result.Decision.String(),
			strings.Join(result.Reasons, listSeparator),
			strings.Join(result.Tips, listSeparator),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the outcomes as an indented JSON array.
func JSONFormat(w io.Writer, outcomes []scenario.Outcome) error {
	if outcomes == nil {
		outcomes = []scenario.Outcome{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outcomes)
}

func formatAmount(val float64) string {
	return strconv.FormatFloat(val, 'f', constants.DecimalPlaces, 64)
}
