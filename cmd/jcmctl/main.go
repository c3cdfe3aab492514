// Command jcmctl is a small operator CLI over a JCM device's USB bulk
// transport: it runs the power-up handshake and issues status/control
// requests from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/jcm-go/jcmdrv/cmd/jcmctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jcmctl: %v\n", err)
		os.Exit(1)
	}
}
