package repl

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/napolitain/solver-craft/internal/display"
	"github.com/napolitain/solver-craft/internal/models"
	"github.com/napolitain/solver-craft/internal/solver/craft"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		verbose bool
		want    Command
		wantErr error
	}{
		{name: "empty", line: "   ", want: Command{Kind: CmdEmpty}},
		{name: "bare query", line: "74 25", want: Command{Kind: CmdEval, State: craft.NewState(74, 25)}},
		{name: "durability rounds up", line: "74 21", want: Command{Kind: CmdEval, State: craft.NewState(74, 25)}},
		{name: "eval keyword", line: "eval 10 30", want: Command{Kind: CmdEval, State: craft.NewState(10, 30)}},
		{name: "help", line: "?", want: Command{Kind: CmdHelp}},
		{name: "help word", line: "help", want: Command{Kind: CmdHelp}},
		{name: "quit", line: "quit", want: Command{Kind: CmdExit}},
		{name: "exit", line: "exit", want: Command{Kind: CmdExit}},
		{name: "verbose toggles on", line: "v", want: Command{Kind: CmdVerbose, Verbose: true}},
		{name: "verbose toggles off", line: "verbose", verbose: true, want: Command{Kind: CmdVerbose, Verbose: false}},
		{name: "verbose explicit", line: "verbose ON", verbose: true, want: Command{Kind: CmdVerbose, Verbose: true}},
		{name: "verbose bad", line: "verbose maybe", wantErr: ErrBadVerbosity},
		{name: "single number", line: "74", wantErr: ErrNotEnoughArguments},
		{name: "eval without args", line: "eval", wantErr: ErrNotEnoughArguments},
		{name: "cp overflow", line: "70000 25", wantErr: ErrBadCP},
		{name: "durability not numeric", line: "74 abc", wantErr: ErrBadDurability},
		{name: "durability overflow", line: "74 300", wantErr: ErrBadDurability},
		{name: "unknown", line: "solve", wantErr: ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line, tt.verbose)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

var (
	policyOnce sync.Once
	policy     *craft.Table[craft.Action]
)

func testSetting() models.Setting {
	return models.Setting{
		MaxDurability:           20,
		MaxCP:                   60,
		ProcessAccuracy:         2910,
		RequiredProcessAccuracy: 2540,
	}
}

func testPolicy(t *testing.T) *craft.Table[craft.Action] {
	t.Helper()
	policyOnce.Do(func() {
		_, policy = craft.BuildTable(testSetting())
	})
	return policy
}

func runLines(t *testing.T, session Session, lines ...string) (string, *REPL) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	r := New(testSetting(), testPolicy(t), session, in, &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String(), r
}

func TestRunEvaluatesQuery(t *testing.T) {
	out, _ := runLines(t, Session{}, "40 20", "exit")

	if !strings.Contains(out, prompt) {
		t.Errorf("missing prompt in output:\n%s", out)
	}
	if !strings.Contains(out, "Quality") {
		t.Errorf("expected a rendered rotation:\n%s", out)
	}
}

func TestRunOutOfBounds(t *testing.T) {
	out, _ := runLines(t, Session{}, "100 20")

	if !strings.Contains(out, "out of bounds") || !strings.Contains(out, "cp<=60") {
		t.Errorf("expected bounds message:\n%s", out)
	}
}

func TestRunReportsParseErrors(t *testing.T) {
	out, _ := runLines(t, Session{}, "what", "12")

	if !strings.Contains(out, ErrUnknownCommand.Error()) {
		t.Errorf("missing unknown command message:\n%s", out)
	}
	if !strings.Contains(out, ErrNotEnoughArguments.Error()) {
		t.Errorf("missing argument count message:\n%s", out)
	}
}

func TestRunStopsAtExit(t *testing.T) {
	out, _ := runLines(t, Session{}, "quit", "help")

	if strings.Contains(out, "Usage:") {
		t.Errorf("lines after quit should not run:\n%s", out)
	}
}

func TestVerboseChangesSession(t *testing.T) {
	out, r := runLines(t, Session{Lang: display.English}, "verbose", "40 20")

	if !r.Session().Verbose {
		t.Error("session should be verbose after toggle")
	}
	if !strings.Contains(out, "verbose on") || !strings.Contains(out, "Manip:") {
		t.Errorf("expected verbose rotation:\n%s", out)
	}
}

func TestHelp(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&buf)
	for _, want := range []string{"eval", "verbose", "help", "quit"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}
