package testutil

import (
	_ "embed"
	"testing"

	"github.com/arthur-debert/deckscript/pkg/script"
)

// FullExample is a complete card script: data links, page setup and one
// VISUAL block with an image and eight text fields, commented in Russian
//
//go:embed testdata/full_example.deck
var FullExample string

// FullExampleCommands parses FullExample, failing the test on error
func FullExampleCommands(t *testing.T) []script.Command {
	t.Helper()
	cmds, err := script.Parse(FullExample)
	if err != nil {
		t.Fatalf("Failed to parse the full example: %v", err)
	}
	return cmds
}
