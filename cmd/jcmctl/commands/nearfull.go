package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	jcm "github.com/jcm-go/jcmdrv"
)

var (
	flagNearFullSet     bool
	flagNearFullEnabled bool
	flagNearFullNumber  uint16
)

var nearFullCmd = &cobra.Command{
	Use:   "near-full",
	Short: "Get or set the recycler's near-full warning threshold",
	Long: `With no flags, reads the current near-full setting. With --set, writes
a new enabled/threshold pair.

Examples:
  # Read the current threshold
  jcmctl near-full

  # Warn at 50 notes
  jcmctl near-full --set --enabled --number 50

  # Disable the warning
  jcmctl near-full --set --enabled=false`,
	RunE: runNearFull,
}

func init() {
	nearFullCmd.Flags().BoolVar(&flagNearFullSet, "set", false, "write a new near-full setting instead of reading it")
	nearFullCmd.Flags().BoolVar(&flagNearFullEnabled, "enabled", true, "whether the near-full warning is enabled (with --set)")
	nearFullCmd.Flags().Uint16Var(&flagNearFullNumber, "number", 0, "note-count threshold that triggers the warning (with --set)")
}

func runNearFull(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout())
	defer cancel()

	mode := jcm.RequestModeGet
	data := jcm.NearFullData{}
	if flagNearFullSet {
		mode = jcm.RequestModeSet
		data = jcm.NearFullData{Enabled: flagNearFullEnabled, Number: flagNearFullNumber}
	}

	req := jcm.NearFullRequest{Mode: mode, Data: data}.ToMessageData(jcm.ConfId(flagConfID), flagUID)
	respData, err := engine.Request(ctx, req)
	if err != nil {
		return fmt.Errorf("near-full request: %w", err)
	}
	resp, err := jcm.NearFullResponseFromMessageData(respData)
	if err != nil {
		return fmt.Errorf("decode near-full response: %w", err)
	}
	if !resp.Code.IsOk() {
		return fmt.Errorf("device refused near-full request: %s", resp.Code)
	}

	out := cmd.OutOrStdout()
	if mode == jcm.RequestModeSet {
		fmt.Fprintf(out, "near-full setting updated\n")
		return nil
	}
	fmt.Fprintf(out, "near-full: enabled=%v threshold=%d\n", resp.Data.Enabled, resp.Data.Number)
	return nil
}
