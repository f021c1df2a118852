// Command linkctl normalizes shared Naver map links from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "linkctl",
		Short:         "Inspect shared map links",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(buildParseCmd())

	return cmd
}
