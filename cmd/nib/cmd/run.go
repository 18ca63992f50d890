package cmd

import (
	"fmt"
	"os"

	"github.com/nibscript/nib/internal/evaluator"
	"github.com/nibscript/nib/internal/lexer"
	"github.com/nibscript/nib/internal/parser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Tokenise, parse, and interpret a source file or inline snippet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run this inline source instead of reading a file")
}

func runRun(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program, parseErr := p.ParseProgram()
	if parseErr != nil {
		fmt.Print(parseErr.Format())
		return fmt.Errorf("parsing %s failed", filename)
	}

	ev := evaluator.New(os.Stdout, os.Stdin)
	ev.Trace = trace

	if _, runErr := ev.RunProgram(program); runErr != nil {
		fmt.Print(runErr.Format())
		return fmt.Errorf("running %s failed", filename)
	}
	return nil
}
