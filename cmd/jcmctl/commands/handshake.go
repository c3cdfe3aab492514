package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var handshakeCmd = &cobra.Command{
	Use:   "handshake",
	Short: "Open the device and run the power-up handshake",
	Long: `Finds the first JCM device on the bus, opens its USB transport, issues
the one-time vendor handshake control transfer, and waits up to the
power-up window for at least one power-up event, acknowledging every
event it sees along the way.

Examples:
  # Run the handshake and report success
  jcmctl handshake`,
	RunE: runHandshake,
}

func runHandshake(cmd *cobra.Command, args []string) error {
	_, cleanup, err := openEngine(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()
	fmt.Fprintln(cmd.OutOrStdout(), "power-up handshake complete")
	return nil
}
