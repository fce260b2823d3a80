package main

import (
	"github.com/iwvelando/loan-estimator/internal/config"
	"github.com/iwvelando/loan-estimator/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globalOptions struct {
	configPath string
	envFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "loan-estimator",
		Short:        "Estimate loan affordability from income, debts and credit score",
		SilenceUsage: true,
		Version:      version,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", constants.DefaultEnvFile, "dotenv file loaded before reading the environment")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(serveCmd(opts), estimateCmd(opts), batchCmd(opts), affordCmd(opts), tiersCmd(opts))
	return cmd
}

// setup loads the environment, configuration and logger shared by every
// subcommand. The caller owns the returned logger.
func (o *globalOptions) setup() (*config.Configuration, *zap.Logger, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return nil, nil, err
	}

	conf, err := config.LoadConfiguration(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := initializeLogger(conf.Logging, o.logLevel)
	if err != nil {
		return nil, nil, err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	return conf, logger, nil
}
