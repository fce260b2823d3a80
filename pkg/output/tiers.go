package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/loan-estimator/internal/estimate"
	"github.com/iwvelando/loan-estimator/pkg/constants"
	"github.com/iwvelando/loan-estimator/pkg/format"
	"github.com/iwvelando/loan-estimator/pkg/mathutil"
)

type tierRow struct {
	Label           estimate.TierLabel `json:"label"`
	MinScore        int                `json:"minScore"`
	MaxDTIPercent   float64            `json:"maxDtiPercent"`
	MaybeDTIPercent float64            `json:"maybeDtiPercent"`
}

func tierRows(tiers []estimate.CreditTier) []tierRow {
	rows := make([]tierRow, 0, len(tiers))
	for _, tier := range tiers {
		rows = append(rows, tierRow{
			Label:           tier.Label,
			MinScore:        tier.MinScore,
			MaxDTIPercent:   mathutil.Round(mathutil.ToPercent(tier.MaxDTI)),
			MaybeDTIPercent: mathutil.Round(mathutil.ToPercent(tier.MaybeLimit())),
		})
	}
	return rows
}

// WriteTiers renders the credit tier table in the named format.
func WriteTiers(w io.Writer, outputFormat string, tiers []estimate.CreditTier) error {
	rows := tierRows(tiers)

	switch outputFormat {
	case constants.OutputFormatPretty:
		if _, err := fmt.Fprintf(w, "%-10s| %-10s| %-13s| %s\n", "Tier", "Min score", "Eligible DTI", "Maybe DTI"); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%-10s| %-10d| %-13s| %s\n",
				row.Label, row.MinScore, format.Percent(row.MaxDTIPercent), format.Percent(row.MaybeDTIPercent)); err != nil {
				return err
			}
		}
		return nil
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"label", "minScore", "maxDtiPercent", "maybeDtiPercent"}); err != nil {
			return err
		}
		for _, row := range rows {
			record := []string{
				string(row.Label),
				strconv.Itoa(row.MinScore),
				formatAmount(row.MaxDTIPercent),
				formatAmount(row.MaybeDTIPercent),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}
