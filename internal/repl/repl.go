package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/napolitain/solver-craft/internal/display"
	"github.com/napolitain/solver-craft/internal/models"
	"github.com/napolitain/solver-craft/internal/solver/craft"
)

const prompt = ">> "

// Session holds the per-REPL display preferences
type Session struct {
	Verbose bool
	Lang    display.Lang
}

// REPL answers rotation queries against a finished policy table
type REPL struct {
	setting models.Setting
	policy  *craft.Table[craft.Action]
	session Session
	in      io.Reader
	out     io.Writer
}

// New creates a REPL reading queries from in and writing answers to out
func New(setting models.Setting, policy *craft.Table[craft.Action], session Session, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		setting: setting,
		policy:  policy,
		session: session,
		in:      in,
		out:     out,
	}
}

// Session returns the current session preferences
func (r *REPL) Session() Session {
	return r.session
}

// Run reads lines until exit or end of input
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if !r.Eval(scanner.Text()) {
			return nil
		}
	}
}

// Eval executes one line and reports whether the loop should continue
func (r *REPL) Eval(line string) bool {
	errColor := color.New(color.FgRed)

	cmd, err := Parse(line, r.session.Verbose)
	if err != nil {
		errColor.Fprintln(r.out, err)
		return true
	}

	switch cmd.Kind {
	case CmdEval:
		r.printSeries(cmd.State)
	case CmdHelp:
		PrintHelp(r.out)
	case CmdVerbose:
		r.session.Verbose = cmd.Verbose
		state := "off"
		if cmd.Verbose {
			state = "on"
		}
		fmt.Fprintf(r.out, "verbose %s\n", state)
	case CmdExit:
		return false
	}
	return true
}

func (r *REPL) printSeries(start craft.State) {
	trace, err := craft.Replay(r.setting, r.policy, start)
	if errors.Is(err, craft.ErrOutOfBounds) {
		color.New(color.FgYellow).Fprintln(r.out, err)
		return
	}
	if err != nil {
		color.New(color.FgRed).Fprintln(r.out, err)
		return
	}

	opts := display.TraceOptions{Verbose: r.session.Verbose, Lang: r.session.Lang}
	if err := display.RenderTrace(r.out, trace, opts); err != nil {
		color.New(color.FgRed).Fprintln(r.out, err)
	}
}

// PrintHelp writes the command summary
func PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  [CP] [durability]       print tactics")
	fmt.Fprintln(w, "  eval [CP] [durability]  print tactics (same as above)")
	fmt.Fprintln(w, "  v, verbose [on|off]     show modifiers in tactics")
	fmt.Fprintln(w, "  ?, h, help              print help")
	fmt.Fprintln(w, "  exit, quit              exit command")
}
