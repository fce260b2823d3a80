package main

import (
	"github.com/iwvelando/loan-estimator/internal/estimate"
	"github.com/iwvelando/loan-estimator/pkg/output"
	"github.com/iwvelando/loan-estimator/pkg/validation"
	"github.com/spf13/cobra"
)

func tiersCmd(opts *globalOptions) *cobra.Command {
	var outputFormat string

	c := &cobra.Command{
		Use:   "tiers",
		Short: "List the credit tiers and their DTI limits",
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
			return output.WriteTiers(cmd.OutOrStdout(), format, estimate.Tiers())
		},
	}

	c.Flags().StringVar(&outputFormat, "output-format", "", "output format override: pretty, csv, json")
	return c
}
