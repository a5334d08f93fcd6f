package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

// NewProgress returns a Progress that draws animated indicators on a
// terminal and plain lines otherwise. Output goes to w, or os.Stdout when
// w is nil.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stdout
	}
	return &indicators{theme: theme, headless: hm, w: w}
}

type indicators struct {
	theme    *Theme
	headless *HeadlessManager
	w        io.Writer
}

func (p *indicators) plain() bool {
	return p.headless.IsHeadless() || p.theme.NoColor
}

func (p *indicators) Start(title string, total int) ProgressBar {
	if p.plain() {
		return &plainTask{w: p.w, label: title, total: total, counted: true}
	}
	return startLive(newBarModel(p.theme, title, total), p.w)
}

func (p *indicators) Spinner(title string) Spinner {
	if p.plain() {
		_, _ = fmt.Fprintln(p.w, title)
		return &plainTask{w: p.w, label: title}
	}
	return startLive(newSpinModel(p.theme, title), p.w)
}

func counter(current, total int, label string) string {
	return fmt.Sprintf("[%d/%d] %s", current, total, label)
}

type (
	labelMsg  string
	stepMsg   int
	finishMsg struct{}
)

// liveModel renders a spinner or a bar, whichever is set, next to a label.
type liveModel struct {
	spin     *spinner.Model
	bar      *progress.Model
	label    string
	current  int
	total    int
	finished bool
}

func newSpinModel(theme *Theme, label string) liveModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return liveModel{spin: &s, label: label}
}

func newBarModel(theme *Theme, label string, total int) liveModel {
	gradient := progress.WithDefaultGradient()
	if !theme.NoColor {
		gradient = progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary)
	}
	b := progress.New(gradient, progress.WithWidth(barWidth))
	return liveModel{bar: &b, label: label, total: total}
}

func (m liveModel) Init() tea.Cmd {
	if m.spin != nil {
		return m.spin.Tick
	}
	return nil
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case labelMsg:
		m.label = string(msg)
	case stepMsg:
		m.current = min(m.current+int(msg), m.total)
	case finishMsg:
		m.current = m.total
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.finished = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.spin == nil {
			return m, nil
		}
		s, cmd := m.spin.Update(msg)
		m.spin = &s
		return m, cmd
	case progress.FrameMsg:
		if m.bar == nil {
			return m, nil
		}
		next, cmd := m.bar.Update(msg)
		b := next.(progress.Model)
		m.bar = &b
		return m, cmd
	}
	return m, nil
}

func (m liveModel) ratio() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.current) / float64(m.total)
}

func (m liveModel) View() string {
	if m.finished {
		return ""
	}
	if m.bar != nil {
		return m.bar.ViewAs(m.ratio()) + " " + counter(m.current, m.total, m.label) + "\n"
	}
	return m.spin.View() + " " + m.label + "\n"
}

// liveTask drives a liveModel on its own program. It never reads stdin, so
// a prompt that follows gets the terminal to itself.
type liveTask struct {
	prog *tea.Program
	once sync.Once
}

func startLive(m liveModel, w io.Writer) *liveTask {
	t := &liveTask{prog: tea.NewProgram(m, tea.WithInput(nil), tea.WithOutput(w))}
	go func() { _, _ = t.prog.Run() }()
	return t
}

func (t *liveTask) SetTitle(title string) { t.prog.Send(labelMsg(title)) }

func (t *liveTask) Increment(n int) { t.prog.Send(stepMsg(n)) }

// Done finishes the indicator and waits for its program to exit. Later
// calls are no-ops.
func (t *liveTask) Done() {
	t.once.Do(func() {
		t.prog.Send(finishMsg{})
		t.prog.Wait()
	})
}

func (t *liveTask) Stop() { t.Done() }

// plainTask writes one line per step. Counted tasks are bars and print a
// counter on Increment; the others print their label on SetTitle.
type plainTask struct {
	w       io.Writer
	label   string
	current int
	total   int
	counted bool
}

func (t *plainTask) SetTitle(title string) {
	t.label = title
	if !t.counted {
		_, _ = fmt.Fprintln(t.w, title)
	}
}

func (t *plainTask) Increment(n int) {
	t.current = min(t.current+n, t.total)
	_, _ = fmt.Fprintln(t.w, counter(t.current, t.total, t.label))
}

func (t *plainTask) Done() { t.current = t.total }

func (t *plainTask) Stop() {}
