package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"makeabet/internal/chain"
	"makeabet/internal/client"
)

// msgNotLocal matches the message the web app shows for a remote chain.
const msgNotLocal = "Faucet only available on local chain"

var errNotLocal = errors.New("faucet not available on the api's target chain")

func faucetCmd(e *env) *cobra.Command {
	var (
		apiURL  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "faucet <address>",
		Short: "Request test ETH and PYUSD from a running local API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			if !chain.IsHexAddress(address) {
				return fmt.Errorf("%q: %w", address, chain.ErrInvalidAddress)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			c := client.NewHTTP(apiURL)
			cfg, err := c.Config(ctx)
			if err != nil {
				return fmt.Errorf("fetch api config: %w", err)
			}
			if !cfg.FaucetAvailable {
				fmt.Fprintln(e.errOut, e.styles().Warning.Render(msgNotLocal))
				return errNotLocal
			}

			hashes, err := c.Faucet(ctx, address)
			if err != nil {
				return err
			}
			sum, err := chain.ChecksumAddress(address)
			if err != nil {
				sum = address
			}
			fmt.Fprintf(e.out, "%s Funded %s\n", e.styles().Success.Render("✔"), sum)
			for _, h := range hashes {
				fmt.Fprintf(e.out, "  %s\n", h)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:4000", "API base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "give up after this long")
	return cmd
}
