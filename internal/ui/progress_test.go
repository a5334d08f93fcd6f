package ui

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func TestProgress_Headless(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf strings.Builder
	prog := NewProgress(testTheme(), hm, &buf)

	pb := prog.Start("vue3-vite", 3)
	pb.Increment(1)
	pb.SetTitle("nuxt3")
	pb.Increment(5)
	pb.Done()

	want := "[1/3] vue3-vite\n[3/3] nuxt3\n"
	if got := buf.String(); got != want {
		t.Errorf("progress output = %q, want %q", got, want)
	}
}

func TestProgress_NoColorUsesPlainOutput(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	var buf strings.Builder
	prog := NewProgress(NewTheme(true), hm, &buf)

	if _, ok := prog.Start("x", 1).(*plainTask); !ok {
		t.Error("Start() with NoColor should return a plain task")
	}
	sp := prog.Spinner("Cloning")
	if _, ok := sp.(*plainTask); !ok {
		t.Fatal("Spinner() with NoColor should return a plain task")
	}
	sp.SetTitle("Resolving")
	sp.Stop()

	want := "Cloning\nResolving\n"
	if got := buf.String(); got != want {
		t.Errorf("spinner output = %q, want %q", got, want)
	}
}

func TestLiveModel_Spinner(t *testing.T) {
	t.Parallel()

	m := newSpinModel(testTheme(), "first")
	if m.Init() == nil {
		t.Fatal("spinner Init should start ticking")
	}

	next, _ := m.Update(labelMsg("second"))
	lm := next.(liveModel)
	if !strings.Contains(lm.View(), "second") {
		t.Errorf("View() = %q, want label", lm.View())
	}

	next, cmd := lm.Update(finishMsg{})
	lm = next.(liveModel)
	if !lm.finished || cmd == nil {
		t.Error("finish should end the spinner and quit")
	}
	if lm.View() != "" {
		t.Errorf("View() after finish = %q, want empty", lm.View())
	}
}

func TestLiveModel_Bar(t *testing.T) {
	t.Parallel()

	m := newBarModel(NewTheme(false), "seed", 4)
	if m.Init() != nil {
		t.Error("bar Init should not schedule anything")
	}

	next, _ := m.Update(stepMsg(3))
	next, _ = next.Update(stepMsg(3))
	lm := next.(liveModel)
	if lm.current != 4 {
		t.Errorf("current = %d, want capped at 4", lm.current)
	}
	if !strings.Contains(lm.View(), "[4/4] seed") {
		t.Errorf("View() = %q", lm.View())
	}

	next, _ = lm.Update(progress.FrameMsg{})
	if next.(liveModel).finished {
		t.Error("a frame should not finish the bar")
	}

	next, _ = lm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(liveModel).finished {
		t.Error("ctrl+c should finish the bar")
	}
}

func TestLiveModel_ZeroTotal(t *testing.T) {
	t.Parallel()

	m := newBarModel(testTheme(), "empty", 0)
	if r := m.ratio(); r != 0 {
		t.Errorf("ratio() = %v, want 0", r)
	}
}

func TestLiveTask_Lifecycle(t *testing.T) {
	tests := []struct {
		name  string
		model liveModel
	}{
		{"spinner", newSpinModel(testTheme(), "Cloning template")},
		{"bar", newBarModel(testTheme(), "Seeding templates", 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &liveTask{prog: tea.NewProgram(tt.model,
				tea.WithInput(strings.NewReader("")),
				tea.WithOutput(io.Discard),
				tea.WithoutRenderer(),
			)}
			exited := make(chan struct{})
			go func() {
				defer close(exited)
				_, _ = task.prog.Run()
			}()

			task.SetTitle("vue3-ts")
			task.Increment(2)
			task.Done()
			task.Stop()

			select {
			case <-exited:
			case <-time.After(2 * time.Second):
				t.Fatal("program did not exit after Done")
			}
		})
	}
}

func TestProgress_LiveOnTerminal(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	var buf lockedBuffer
	prog := NewProgress(NewTheme(false), hm, &buf)

	sp := prog.Spinner("Removing old project")
	if _, ok := sp.(*liveTask); !ok {
		t.Fatalf("Spinner() type = %T, want *liveTask", sp)
	}
	sp.Stop()

	pb := prog.Start("Seeding templates", 2)
	if _, ok := pb.(*liveTask); !ok {
		t.Fatalf("Start() type = %T, want *liveTask", pb)
	}
	pb.Increment(2)
	pb.Done()
}

// lockedBuffer takes writes from a program goroutine.
type lockedBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}
