package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ruteri/fee-recipient-registry/api/handlers"
	"github.com/ruteri/fee-recipient-registry/cmd/flags"
	"github.com/ruteri/fee-recipient-registry/common"
	"github.com/ruteri/fee-recipient-registry/httpserver"
	"github.com/ruteri/fee-recipient-registry/registry"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "fee-recipient-registry",
		Usage:   "Serve the validator pubkey to payout address registry",
		Version: common.Version,
		Flags:   append([]cli.Flag{flags.ListenAddrFlag}, flags.CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)
			cfg := flags.ConfigureServer(cCtx, logger, cCtx.String(flags.ListenAddrFlag.Name))

			// The registry lives only as long as the process
			reg := registry.NewMemoryRegistry()
			handler := handlers.NewHandler(reg, logger)

			server, err := httpserver.New(cfg, handler, reg)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			logger.Info("Starting server",
				"maxInFlight", cfg.MaxInFlight,
				"requestTimeout", cfg.RequestTimeout)
			server.RunInBackground()

			// Wait for termination signal
			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
