package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	evalExpr string
	verbose  bool
	trace    bool
)

var rootCmd = &cobra.Command{
	Use:     "nib",
	Short:   "nib: a small expression-oriented scripting language",
	Version: Version,
	Long: `nib is a tiny statically-typed, expression-oriented language: a
lexer, a Pratt-precedence parser, and a tree-walking evaluator with
persistent scopes and closures.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace evaluator execution")
}

// readInput resolves a command's input from either the -e/--eval flag or
// a single positional file argument, matching every subcommand's
// file-or-inline dispatch.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := readFile(args[0])
		if readErr != nil {
			return "", "", readErr
		}
		return content, args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline code")
}
