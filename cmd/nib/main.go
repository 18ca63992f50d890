// Command nib is the CLI front end for the language: lexing, parsing,
// printing, and running source files or inline snippets.
package main

import (
	"fmt"
	"os"

	"github.com/nibscript/nib/cmd/nib/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
