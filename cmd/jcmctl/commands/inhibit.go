package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	jcm "github.com/jcm-go/jcmdrv"
)

var flagInhibited bool

var inhibitCmd = &cobra.Command{
	Use:   "inhibit",
	Short: "Enable or disable the device as a whole",
	Long: `Sends an InhibitRequest, blocking or allowing the device from accepting
notes entirely.

Examples:
  # Stop accepting notes
  jcmctl inhibit --inhibited

  # Resume accepting notes
  jcmctl inhibit --inhibited=false`,
	RunE: runInhibit,
}

func init() {
	inhibitCmd.Flags().BoolVar(&flagInhibited, "inhibited", true, "whether the device should be inhibited")
}

func runInhibit(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout())
	defer cancel()

	req := jcm.InhibitRequest{Inhibited: flagInhibited}.ToMessageData(jcm.ConfId(flagConfID), flagUID)
	respData, err := engine.Request(ctx, req)
	if err != nil {
		return fmt.Errorf("inhibit request: %w", err)
	}
	resp, err := jcm.InhibitResponseFromMessageData(respData)
	if err != nil {
		return fmt.Errorf("decode inhibit response: %w", err)
	}
	if !resp.Code.IsOk() {
		return fmt.Errorf("device refused inhibit request: %s", resp.Code)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "inhibited=%v acknowledged\n", flagInhibited)
	return nil
}
