package deckscript

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/deckscript/pkg/script"
)

// lineMap walks text the way script.Parse does and records the 1-based line
// of every command. errLine is the line of the first error, 0 when the text
// parses.
type lineMap struct {
	commands []int
	errLine  int
}

func locate(text string) lineMap {
	trimmed := strings.TrimSpace(text)
	offset := strings.Count(text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))], "\n")

	var m lineMap
	if trimmed == "" {
		return m
	}
	for i, line := range strings.Split(trimmed, "\n") {
		_, ok, err := script.ParseLine(line)
		if err != nil {
			m.errLine = offset + i + 1
			return m
		}
		if ok {
			m.commands = append(m.commands, offset+i+1)
		}
	}
	return m
}

// commandLine maps a command index to its line, 0 when out of range
func (m lineMap) commandLine(index int) int {
	if index < 0 || index >= len(m.commands) {
		return 0
	}
	return m.commands[index]
}
