package cmd

import (
	"fmt"

	"github.com/nibscript/nib/internal/lexer"
	"github.com/nibscript/nib/internal/parser"
	"github.com/nibscript/nib/internal/printer"
	"github.com/spf13/cobra"
)

var parserCmd = &cobra.Command{
	Use:   "parser [file]",
	Short: "Print the parsed AST in indented form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParser,
}

func init() {
	rootCmd.AddCommand(parserCmd)
	parserCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse this inline source instead of reading a file")
}

func runParser(_ *cobra.Command, args []string) error {
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

	fmt.Print(printer.Print(program))
	return nil
}
