package tui

import "strings"

// ParsedCommand is a command-line input split into a name and its words.
type ParsedCommand struct {
	Name string
	Args []string
}

// ParseCommandInput splits input like ":save song.yaml" into name and args.
// The leading ':' is optional and arguments are split on whitespace.
func ParseCommandInput(input string) ParsedCommand {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, ":")

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return ParsedCommand{}
	}

	return ParsedCommand{
		Name: parts[0],
		Args: parts[1:],
	}
}

// Arg returns argument i, or "" when there are fewer arguments.
func (p ParsedCommand) Arg(i int) string {
	if i < len(p.Args) {
		return p.Args[i]
	}
	return ""
}

// Rest joins every argument with single spaces.
func (p ParsedCommand) Rest() string {
	return strings.Join(p.Args, " ")
}
