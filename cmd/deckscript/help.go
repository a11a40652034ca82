package deckscript

import (
	"embed"
	"io/fs"
)

//go:embed help/*.md
var helpFiles embed.FS

// HelpTopics returns the embedded help topics, rooted at the topic files
func HelpTopics() fs.FS {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		panic(err)
	}
	return sub
}
