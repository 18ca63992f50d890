package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// replCmd is reserved by spec: an interactive read-eval-print loop is not
// required to function in this core.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive mode (reserved; not implemented)",
	RunE: func(_ *cobra.Command, _ []string) error {
		return fmt.Errorf("repl is reserved and not implemented in this build")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
