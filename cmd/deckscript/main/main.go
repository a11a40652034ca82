package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/deckscript/cmd/deckscript"
	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/ui/output/styles"
)

func main() {
	rootCmd := deckscript.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Already written to stdout by the command
		if errors.IsErrorCode(err, errors.ErrReported) {
			os.Exit(1)
		}

		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
