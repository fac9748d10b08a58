package display

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/napolitain/solver-craft/internal/solver/craft"
)

func sampleTrace() *craft.Trace {
	start := craft.NewState(74, 25)
	return &craft.Trace{
		Start: start,
		Steps: []craft.Step{
			{State: start, Action: craft.Innovation, Reward: 0, Total: 0},
			{State: craft.State{CP: 56, Durability: 25, Buff: craft.Buff{InnerQuiet: 11, Innovation: 4}}, Action: craft.ByregotsBlessing, Reward: 900, Total: 900},
		},
		Final: craft.State{CP: 32, Durability: 15, Buff: craft.Buff{Innovation: 3}},
		Total: 900,
	}
}

func TestRenderTrace(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrace(&buf, sampleTrace(), TraceOptions{}); err != nil {
		t.Fatalf("RenderTrace failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Innovation", "Byregot's Blessing", "900 (+900)", "Quality 900 in 2 actions", "CP 32, durability 15"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTraceVerboseJapanese(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrace(&buf, sampleTrace(), TraceOptions{Verbose: true, Lang: Japanese}); err != nil {
		t.Fatalf("RenderTrace failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"イノベーション", "ビエルゴの祝福", "Inno:3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestActionLabelCoversCatalog(t *testing.T) {
	for _, a := range craft.CandidateActions {
		if _, ok := englishLabels[a]; !ok {
			t.Errorf("missing English label for %v", a)
		}
		if _, ok := japaneseLabels[a]; !ok {
			t.Errorf("missing Japanese label for %v", a)
		}
	}
	if got := ActionLabel(craft.Action(99), English); got != "Action(?)" {
		t.Errorf("unknown action label = %q", got)
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"", English, true},
		{"en", English, true},
		{"JA", Japanese, true},
		{"fr", English, false},
	}
	for _, tt := range tests {
		got, err := ParseLang(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseLang(%q) = %v, %v; want %v, ok=%v", tt.in, got, err, tt.want, tt.ok)
		}
	}
}

func TestProgressModel(t *testing.T) {
	var m tea.Model = newProgressModel("Solving", 10)

	m, cmd := m.Update(progressMsg(4))
	if cmd != nil {
		t.Error("progress update should not quit")
	}
	if view := m.View(); !strings.Contains(view, "40%") || !strings.Contains(view, "(4/10)") {
		t.Errorf("unexpected view: %q", view)
	}

	m, _ = m.Update(progressMsg(25))
	if got := m.(progressModel).done; got != 10 {
		t.Errorf("done should clamp to total, got %d", got)
	}

	m, cmd = m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("done message should quit")
	}
	if !m.(progressModel).quit {
		t.Error("model should be marked as quitting")
	}
	if view := m.View(); !strings.Contains(view, "100%") {
		t.Errorf("final view should be complete: %q", view)
	}
}

func TestProgressModelInterrupt(t *testing.T) {
	var m tea.Model = newProgressModel("Solving", 10)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if !m.(progressModel).interrupted {
		t.Error("ctrl+c should mark the model as interrupted")
	}
}

func TestRunWithProgressWaitsForWork(t *testing.T) {
	var out bytes.Buffer
	var result []int

	err := RunWithProgress(&out, "Solving", 3, func(report func(done, total int)) {
		for i := 1; i <= 3; i++ {
			result = append(result, i)
			report(i, 3)
		}
	})
	if err != nil {
		t.Fatalf("RunWithProgress failed: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("work should be finished on return, got %v", result)
	}
}
