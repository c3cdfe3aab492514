package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	jcm "github.com/jcm-go/jcmdrv"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the device's function mode and per-unit status",
	Long: `Sends a StatusRequest and prints the decoded function mode, major/minor
status, and the status of every addressable unit.

Examples:
  # Read status from the default conf-id/uid
  jcmctl status

  # Address a specific unit
  jcmctl status --uid 1`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout())
	defer cancel()

	req := jcm.StatusRequest{}.ToMessageData(jcm.ConfId(flagConfID), flagUID)
	respData, err := engine.Request(ctx, req)
	if err != nil {
		return fmt.Errorf("status request: %w", err)
	}
	resp, err := jcm.StatusResponseFromMessageData(respData)
	if err != nil {
		return fmt.Errorf("decode status response: %w", err)
	}
	if !resp.Code.IsOk() {
		return fmt.Errorf("device refused status request: %s", resp.Code)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "function/status: %s\n", resp.Status)
	for _, unit := range resp.Units {
		fmt.Fprintf(out, "  unit %d: %s\n", unit.UnitNumber, unit.FunctionStatus)
	}
	if state, ok := engine.BillAcceptorState(); ok {
		fmt.Fprintf(out, "bill acceptor state: %s\n", state)
	}
	return nil
}
