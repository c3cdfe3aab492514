// Package commands implements the jcmctl operator CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags, shared by every subcommand that opens a device.
	flagConfID  uint8
	flagUID     uint8
	flagTimeout int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "jcmctl",
	Short: "Operate a JCM banknote acceptor/recycler over USB",
	Long: `jcmctl drives a JCM-family banknote acceptor/recycler directly over its
USB bulk transport: it performs the power-up handshake, issues status and
control requests, and prints the decoded responses.

Use "jcmctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint8Var(&flagConfID, "conf-id", 0x10, "device hardware configuration (conf_id) to address")
	rootCmd.PersistentFlags().Uint8Var(&flagUID, "uid", 0, "unit id to address")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 5, "request timeout in seconds")

	rootCmd.AddCommand(handshakeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(inhibitCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(nearFullCmd)
	rootCmd.AddCommand(currencyCmd)
}
