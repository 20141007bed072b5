// Package teatest steps a bubbletea model by hand in tests.
//
// No tea.Program is started. Update runs on the test goroutine and every
// returned Cmd is executed in place; a Cmd that has not produced a message
// after cmdWait is treated as a timer and discarded. Ticks therefore only
// happen when the test sends them.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	cmdWait = 10 * time.Millisecond
	// maxSteps caps the messages fed back per Send.
	maxSteps = 100
)

// Driver holds the model as it evolves.
type Driver struct {
	t     *testing.T
	model tea.Model
	quit  bool
}

// Start wraps model and feeds the result of its Init back through Update.
func Start(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	d.run(model.Init())
	return d
}

// Send delivers msg unless the model has already quit.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.quit {
		return
	}
	var cmd tea.Cmd
	d.model, cmd = d.model.Update(msg)
	d.run(cmd)
}

// Key sends a special key such as tea.KeyEsc.
func (d *Driver) Key(k tea.KeyType) {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// Type sends each rune of s as its own key press.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) View() string { return d.model.View() }

// Quit reports whether the model asked the program to exit.
func (d *Driver) Quit() bool { return d.quit }

// run works through cmd and everything it leads to, breadth first.
func (d *Driver) run(cmd tea.Cmd) {
	d.t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && !d.quit; steps++ {
		if steps == maxSteps {
			d.t.Fatalf("teatest: model still producing commands after %d steps", maxSteps)
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := await(next).(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			d.quit = true
		default:
			var follow tea.Cmd
			d.model, follow = d.model.Update(msg)
			queue = append(queue, follow)
		}
	}
}

func await(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	timer := time.NewTimer(cmdWait)
	defer timer.Stop()
	select {
	case msg := <-done:
		return msg
	case <-timer.C:
		return nil
	}
}
