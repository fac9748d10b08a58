package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 40

// ErrInterrupted is returned when the user stops the progress display
var ErrInterrupted = errors.New("interrupted")

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type progressMsg int

type doneMsg struct{}

// progressModel renders the CP layers finished so far
type progressModel struct {
	title string
	done  int
	total int
	quit  bool

	interrupted bool
}

func newProgressModel(title string, total int) progressModel {
	return progressModel{title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done = min(int(msg), m.total)
	case doneMsg:
		m.done = m.total
		m.quit = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			m.interrupted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	filled := 0
	percent := 100
	if m.total > 0 {
		filled = progressWidth * m.done / m.total
		percent = 100 * m.done / m.total
	}
	bar := filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", progressWidth-filled))

	return fmt.Sprintf("%s %s %3d%% (%d/%d)\n", titleStyle.Render(m.title), bar, percent, m.done, m.total)
}

// RunWithProgress runs work while drawing a progress bar on out. work
// receives a callback reporting finished units out of total. It returns once
// work has finished, or with an error as soon as the display stops early; in
// that case work may still be running and its results must not be read.
func RunWithProgress(out io.Writer, title string, total int, work func(report func(done, total int))) error {
	p := tea.NewProgram(newProgressModel(title, total), tea.WithOutput(out), tea.WithInput(nil))

	done := make(chan struct{})
	go func() {
		defer close(done)
		work(func(n, _ int) {
			p.Send(progressMsg(n))
		})
		p.Send(doneMsg{})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(progressModel); ok && m.interrupted {
		return ErrInterrupted
	}
	<-done
	return nil
}
