package main

import (
	"github.com/iwvelando/loan-estimator/internal/estimate"
	"github.com/iwvelando/loan-estimator/internal/scenario"
	"github.com/iwvelando/loan-estimator/pkg/output"
	"github.com/iwvelando/loan-estimator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func estimateCmd(opts *globalOptions) *cobra.Command {
	var (
		req          estimate.Request
		name         string
		outputFormat string
	)

	c := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate affordability for a single applicant",
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

			result, err := estimate.Estimate(req)
			if err != nil {
				logger.Error("estimate rejected",
					zap.String("op", "main.estimate"),
					zap.Error(err),
				)
				return err
			}

			return output.Write(cmd.OutOrStdout(), format, []scenario.Outcome{{Name: name, Result: result}})
		},
	}

	bindRequestFlags(c, &req)
	c.Flags().StringVar(&name, "name", "applicant", "label shown in the output")
	c.Flags().StringVar(&outputFormat, "output-format", "", "output format override: pretty, csv, json")
	return c
}

func batchCmd(opts *globalOptions) *cobra.Command {
	var (
		file         string
		outputFormat string
	)

	c := &cobra.Command{
		Use:   "batch",
		Short: "Estimate affordability for every applicant in a YAML file",
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

			applicants, err := scenario.LoadFile(file)
			if err != nil {
				return err
			}

			outcomes, err := scenario.Run(logger, applicants)
			if err != nil {
				logger.Error("batch estimate failed",
					zap.String("op", "main.batch"),
					zap.Error(err),
				)
				return err
			}

			logger.Info("batch estimate complete",
				zap.String("op", "main.batch"),
				zap.Int("applicants", len(outcomes)),
			)
			return output.Write(cmd.OutOrStdout(), format, outcomes)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "YAML file listing applicants (required)")
	c.Flags().StringVar(&outputFormat, "output-format", "", "output format override: pretty, csv, json")
	_ = c.MarkFlagRequired("file")
	return c
}

// bindRequestFlags registers the applicant inputs. Defaults match the client
// form.
func bindRequestFlags(c *cobra.Command, req *estimate.Request) {
	c.Flags().Float64Var(&req.AnnualIncome, "annual-income", 75000, "yearly gross income")
	c.Flags().Float64Var(&req.MonthlyDebts, "monthly-debts", 1500, "total monthly debt payments")
	c.Flags().IntVar(&req.CreditScore, "credit-score", 700, "credit score (300-850)")
	c.Flags().Float64Var(&req.LoanAmount, "loan-amount", 300000, "requested principal")
	c.Flags().Float64Var(&req.InterestRate, "interest-rate", 6.5, "annual interest rate in percent")
	c.Flags().IntVar(&req.TermYears, "term-years", 30, "loan term in years")
}

// resolveOutputFormat gives the CLI flag precedence over configuration.
func resolveOutputFormat(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	return configured
}
