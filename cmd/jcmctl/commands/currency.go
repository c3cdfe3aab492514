package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	jcm "github.com/jcm-go/jcmdrv"
)

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "List the device's denomination-bit-to-currency assignment table",
	Long: `Sends a CurrencyAssignRequest and prints one line per assigned bit
position. Unused slots (ISO 4217 "XXX" code or zero denomination) are
omitted.

Examples:
  jcmctl currency`,
	RunE: runCurrency,
}

func runCurrency(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout())
	defer cancel()

	req := jcm.CurrencyAssignRequest{}.ToMessageData(jcm.ConfId(flagConfID), flagUID)
	respData, err := engine.Request(ctx, req)
	if err != nil {
		return fmt.Errorf("currency assign request: %w", err)
	}
	resp, err := jcm.CurrencyAssignResponseFromMessageData(respData)
	if err != nil {
		return fmt.Errorf("decode currency assign response: %w", err)
	}
	if !resp.Code.IsOk() {
		return fmt.Errorf("device refused currency assign request: %s", resp.Code)
	}

	out := cmd.OutOrStdout()
	for _, assign := range resp.List {
		if assign.Currency.IsEmpty() {
			continue
		}
		fmt.Fprintf(out, "bit %d: %s\n", assign.BitNumber, assign.Currency)
	}
	return nil
}
