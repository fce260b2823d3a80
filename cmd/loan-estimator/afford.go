package main

import (
	"fmt"

	"github.com/iwvelando/loan-estimator/internal/estimate"
	"github.com/iwvelando/loan-estimator/internal/optimizer"
	"github.com/iwvelando/loan-estimator/pkg/output"
	"github.com/iwvelando/loan-estimator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func affordCmd(opts *globalOptions) *cobra.Command {
	var (
		req          estimate.Request
		targetName   string
		outputFormat string
	)

	c := &cobra.Command{
		Use:   "afford",
		Short: "Find the largest loan amount that still reaches a target decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			format := resolveOutputFormat(outputFormat, conf.Output.Format)
			if err := validation.ValidateOutputFormat(format); err != nil {
				return err
			}

			target, err := estimate.ParseDecision(targetName)
			if err != nil {
				return fmt.Errorf("invalid --target: %w", err)
			}

			summary, err := optimizer.NewRunner(logger).MaxLoanAmount(req, target)
			if err != nil {
				logger.Error("largest loan search rejected",
					zap.String("op", "main.afford"),
					zap.Error(err),
				)
				return err
			}
			if !summary.Converged {
				logger.Warn("largest loan search did not converge",
					zap.String("op", "main.afford"),
					zap.Strings("notes", summary.Notes),
				)
			}

			return output.WriteSummary(cmd.OutOrStdout(), format, summary)
		},
	}

	bindRequestFlags(c, &req)
	c.Flags().StringVar(&targetName, "target", string(estimate.DecisionEligible), "decision to reach: Eligible or Maybe")
	c.Flags().StringVar(&outputFormat, "output-format", "", "output format override: pretty, csv, json")
	return c
}
