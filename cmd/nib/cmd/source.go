package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sourceCmd = &cobra.Command{
	Use:   "source [file]",
	Short: "Print the source file verbatim",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSource,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
	sourceCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "print this inline source instead of reading a file")
}

func runSource(_ *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}
	fmt.Print(input)
	return nil
}

func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}
