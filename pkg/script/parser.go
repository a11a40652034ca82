package script

import (
	"strings"

	"github.com/arthur-debert/deckscript/pkg/logging"
)

const commentPrefix = ";"

// Parse turns a whole script into its commands, in line order. Comment lines
// (starting with ';' after trimming) produce nothing. The first malformed line
// aborts parsing: the error is returned with a nil slice.
//
// A script that is empty after trimming yields an empty slice. A blank line
// between directives is not skipped and fails as an unknown directive.
func Parse(document string) ([]Command, error) {
	logger := logging.GetLogger("script")

	document = strings.TrimSpace(document)
	if document == "" {
		return []Command{}, nil
	}

	lines := strings.Split(document, "\n")
	commands := make([]Command, 0, len(lines))
	for i, line := range lines {
		cmd, ok, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		logger.Trace().
			Int("line", i+1).
			Str("directive", string(cmd.Directive())).
			Msg("Parsed directive")
		commands = append(commands, cmd)
	}

	logger.Debug().
		Int("lines", len(lines)).
		Int("commands", len(commands)).
		Msg("Parsed script")
	return commands, nil
}

// ParseLine parses a single script line. ok is false for comments.
//
// The line is split at every '='; the keyword is the text before the first
// one and the payload the text between the first and the second. Anything
// after a second '=' is dropped. ENDVISUAL is accepted without '='.
func ParseLine(line string) (cmd Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, commentPrefix) {
		return nil, false, nil
	}

	parts := strings.Split(line, "=")
	keyword := strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		switch Directive(keyword) {
		case DirectiveEndVisual:
			return EndVisualCmd{}, true, nil
		case "":
			return nil, false, unknownDirective(keyword)
		}
		return nil, false, malformedLine(line)
	}

	cmd, err = dispatch(keyword, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, false, err
	}
	return cmd, true, nil
}

func dispatch(keyword, payload string) (Command, error) {
	switch Directive(keyword) {
	case DirectiveLinkMulti:
		return parseLinkMulti(payload)
	case DirectiveLink:
		return parseLinkDirective(payload)
	case DirectiveUnit:
		return parseUnitDirective(payload)
	case DirectivePage:
		return parsePage(payload)
	case DirectiveBorder:
		return parseBorder(payload)
	case DirectiveVisual:
		return parseVisual(payload)
	case DirectiveImage:
		return parseImage(payload)
	case DirectiveTextFont:
		return parseTextFont(payload)
	case DirectiveEndVisual:
		return parseEndVisual(payload)
	}
	return nil, unknownDirective(keyword)
}
