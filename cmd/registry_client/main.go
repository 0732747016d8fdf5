package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ruteri/fee-recipient-registry/api/clients"
	"github.com/ruteri/fee-recipient-registry/cmd/flags"
	"github.com/ruteri/fee-recipient-registry/interfaces"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "registry client",
		Usage: "Query and update a fee recipient registry server",
		Flags: []cli.Flag{
			flags.ServerAddrFlag,
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print the payout address registered for a pubkey",
				ArgsUsage: "<pubkey>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return errors.New("expected exactly one argument: <pubkey>")
					}
					key, err := interfaces.NewValidatorKey(cCtx.Args().Get(0))
					if err != nil {
						return err
					}

					address, err := newClient(cCtx).GetPayoutAddress(cCtx.Context, key)
					if err != nil {
						return err
					}
					fmt.Println(address)
					return nil
				},
			},
			{
				Name:      "set",
				Usage:     "register a payout address for a pubkey",
				ArgsUsage: "<pubkey> <address>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 2 {
						return errors.New("expected exactly two arguments: <pubkey> <address>")
					}
					key, err := interfaces.NewValidatorKey(cCtx.Args().Get(0))
					if err != nil {
						return err
					}
					address, err := interfaces.NewPayoutAddress(cCtx.Args().Get(1))
					if err != nil {
						return err
					}

					return newClient(cCtx).SetPayoutAddress(cCtx.Context, key, address)
				},
			},
			{
				Name:  "list",
				Usage: "print every registered entry as JSON",
				Action: func(cCtx *cli.Context) error {
					payouts, err := newClient(cCtx).ListPayoutAddresses(cCtx.Context)
					if err != nil {
						return err
					}

					encoder := json.NewEncoder(os.Stdout)
					encoder.SetIndent("", "  ")
					return encoder.Encode(payouts)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newClient(cCtx *cli.Context) *clients.RegistryClient {
	return clients.NewRegistryClient(cCtx.String(flags.ServerAddrFlag.Name))
}
