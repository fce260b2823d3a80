package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-estimator/pkg/constants"
	"github.com/iwvelando/loan-estimator/pkg/format"
	"github.com/iwvelando/loan-estimator/pkg/optimization"
)

// WriteSummary renders a largest-loan search in the named format.
func WriteSummary(w io.Writer, outputFormat string, summary optimization.Summary) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettySummary(w, summary)
	case constants.OutputFormatCSV:
		return CsvSummary(w, summary)
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

// PrettySummary writes a human-readable largest-loan report.
func PrettySummary(w io.Writer, summary optimization.Summary) error {
	lines := []string{
		"--- Largest loan for " + string(summary.Target) + " ---\n",
		"Requested       | " + format.Currency(summary.Original) + "\n",
		"Largest loan    | " + format.Currency(summary.Value) + "\n",
		"Headroom        | " + format.Currency(summary.Headroom()) + "\n",
		"Monthly payment | " + format.Currency(summary.MonthlyPayment) + "\n",
		"Total interest  | " + format.Currency(summary.TotalInterest) + "\n",
		"DTI             | " + format.Percent(summary.DTIPercent) + "\n",
		"Decision        | " + string(summary.Decision) + "\n",
	}
	if !summary.Converged {
		lines = append(lines, "Search did not converge\n")
	}
	lines = append(lines, bulletList("Notes", summary.Notes)...)

	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// CsvSummary writes the summary as a header and a single row.
func CsvSummary(w io.Writer, summary optimization.Summary) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"target", "original", "value", "monthlyPayment", "totalInterest", "dtiPercent", "decision", "iterations", "converged", "notes"},
		{
			summary.Target.String(),
			formatAmount(summary.Original),
			formatAmount(summary.Value),
			formatAmount(summary.MonthlyPayment),
			formatAmount(summary.TotalInterest),
			formatAmount(summary.DTIPercent),
			summary.Decision.String(),
			strconv.Itoa(summary.Iterations),
			strconv.FormatBool(summary.Converged),
			strings.Join(summary.Notes, listSeparator),
		},
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
