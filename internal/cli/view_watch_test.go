package cli

import (
	"os"
	"testing"
	"time"

	"github.com/alexanderramin/logtime/internal/cli/formatter"
	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/teatest"
	"github.com/alexanderramin/logtime/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	formatter.DisableColor()
	os.Exit(m.Run())
}

func watchFixture(t *testing.T) (*watchModel, *testutil.FixedClock) {
	t.Helper()
	zone, err := clock.LoadZone("Europe/Berlin")
	require.NoError(t, err)
	clk := testutil.NewFixedClock(jan1)

	cur := &domain.CurrentStretch{
		Stretch: &domain.Stretch{ID: 1, SubtaskID: 1, Start: jan1},
		WorkItem: &domain.WorkItem{
			Project: &domain.Project{ID: 1, Code: "ACME"},
			Task:    &domain.Task{ID: 1, ProjectID: 1, Number: 3},
			Subtask: &domain.Subtask{ID: 1, TaskID: 1, Number: 2},
		},
	}
	return newWatchModel(cur, clk, zone), clk
}

func TestWatchModel_TicksWithClock(t *testing.T) {
	m, clk := watchFixture(t)
	d := teatest.Start(t, m)
	d.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, d.View(), "ACME-3-2  0:0:0  since 2023-01-01 10:00:00")
	assert.Contains(t, d.View(), "q quit")

	clk.Advance(90 * time.Second)
	assert.Contains(t, d.View(), "0:0:0", "view only moves on a tick")

	d.Send(watchTickMsg(clk.Now()))
	assert.Contains(t, d.View(), "ACME-3-2  0:1:30")
	assert.False(t, d.Quit())
}

func TestWatchModel_QuitKeys(t *testing.T) {
	for name, press := range map[string]func(*teatest.Driver){
		"q":      func(d *teatest.Driver) { d.Type("q") },
		"esc":    func(d *teatest.Driver) { d.Key(tea.KeyEsc) },
		"ctrl+c": func(d *teatest.Driver) { d.Key(tea.KeyCtrlC) },
	} {
		t.Run(name, func(t *testing.T) {
			m, _ := watchFixture(t)
			d := teatest.Start(t, m)

			press(d)
			assert.True(t, d.Quit())
			assert.Equal(t, "ACME-3-2  0:0:0  since 2023-01-01 10:00:00\n", d.View(), "final frame drops spinner and help")
		})
	}
}

func TestWatchModel_OtherKeysIgnored(t *testing.T) {
	m, _ := watchFixture(t)
	d := teatest.Start(t, m)

	d.Type("x")
	assert.False(t, d.Quit())
}
