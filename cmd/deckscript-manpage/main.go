package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/deckscript/cmd/deckscript"
	"github.com/arthur-debert/deckscript/internal/version"
)

func main() {
	rootCmd := deckscript.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DECKSCRIPT",
		Section: "1",
		Source:  "deckscript " + version.Version,
		Manual:  "deckscript manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
