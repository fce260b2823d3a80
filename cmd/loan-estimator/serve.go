package main

import (
	"os/signal"
	"syscall"

	"github.com/iwvelando/loan-estimator/internal/config"
	"github.com/iwvelando/loan-estimator/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		address     string
		maxBodySize string
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimate API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if address != "" {
				conf.Server.Address = address
			}
			if maxBodySize != "" {
				size, err := config.ParseSize(maxBodySize)
				if err != nil {
					return err
				}
				conf.Server.SetMaxBodySizeBytes(size)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.Serve(ctx, logger, conf.Server, version); err != nil {
				logger.Error("server stopped with error",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
				return err
			}
			return nil
		},
	}

	c.Flags().StringVar(&address, "address", "", "listen address override (default from config)")
	c.Flags().StringVar(&maxBodySize, "max-body-size", "", "request body limit override, e.g. 64K")
	return c
}
