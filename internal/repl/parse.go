package repl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/napolitain/solver-craft/internal/solver/craft"
)

var (
	ErrNotEnoughArguments = errors.New("not enough arguments")
	ErrBadCP              = errors.New("cannot parse CP")
	ErrBadDurability      = errors.New("cannot parse durability")
	ErrBadVerbosity       = errors.New("verbose takes on or off")
	ErrUnknownCommand     = errors.New("wrong command (h for help)")
)

// CommandKind identifies a parsed REPL line
type CommandKind int

const (
	CmdEmpty CommandKind = iota
	CmdHelp
	CmdExit
	CmdEval
	CmdVerbose
)

// Command is one parsed REPL line
type Command struct {
	Kind    CommandKind
	State   craft.State // for CmdEval
	Verbose bool        // for CmdVerbose
}

// ParseQuery builds a start state from textual CP and durability. Durability
// is rounded up to the next multiple of 5.
func ParseQuery(cp, durability string) (craft.State, error) {
	c, err := strconv.ParseUint(cp, 10, 16)
	if err != nil {
		return craft.State{}, ErrBadCP
	}
	d, err := strconv.ParseUint(durability, 10, 8)
	if err != nil {
		return craft.State{}, ErrBadDurability
	}
	return craft.NewState(int(c), craft.RoundDurability(int(d))), nil
}

func parseEval(args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, ErrNotEnoughArguments
	}
	s, err := ParseQuery(args[0], args[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdEval, State: s}, nil
}

func parseVerbose(args []string, current bool) (Command, error) {
	if len(args) == 0 {
		return Command{Kind: CmdVerbose, Verbose: !current}, nil
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return Command{Kind: CmdVerbose, Verbose: true}, nil
	case "off", "false", "0":
		return Command{Kind: CmdVerbose, Verbose: false}, nil
	default:
		return Command{}, ErrBadVerbosity
	}
}

func isAllNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Parse interprets one REPL line. verbose is the current session verbosity,
// used when "verbose" toggles without an argument.
func Parse(line string, verbose bool) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdEmpty}, nil
	}

	switch head := fields[0]; {
	case isAllNumeric(head):
		return parseEval(fields)
	case head == "eval":
		return parseEval(fields[1:])
	case head == "?", head == "h", head == "help":
		return Command{Kind: CmdHelp}, nil
	case head == "quit", head == "exit":
		return Command{Kind: CmdExit}, nil
	case head == "v", head == "verbose":
		return parseVerbose(fields[1:], verbose)
	default:
		return Command{}, ErrUnknownCommand
	}
}
