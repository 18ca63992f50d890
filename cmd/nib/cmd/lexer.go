package cmd

import (
	"fmt"

	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/lexer"
	"github.com/nibscript/nib/internal/token"
	"github.com/spf13/cobra"
)

var lexerCmd = &cobra.Command{
	Use:   "lexer [file]",
	Short: "Print one token per line (kind - original)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLexer,
}

func init() {
	rootCmd.AddCommand(lexerCmd)
	lexerCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize this inline source instead of reading a file")
}

func runLexer(_ *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithPreserveComments(true))
	for {
		tok := l.NextToken()
		fmt.Printf("%s - %s\n", tok.Type, tok.Literal)
		if tok.Type == token.EOF {
			break
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		fmt.Print(errors.FormatErrors(errs))
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	return nil
}
