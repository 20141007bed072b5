package cli

import (
	"time"

	"github.com/alexanderramin/logtime/internal/cli/formatter"
	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type watchTickMsg time.Time

type watchKeyMap struct {
	Quit key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k watchKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// watchModel redraws the open stretch once a second.
type watchModel struct {
	current *domain.CurrentStretch
	clock   clock.Clock
	zone    *clock.Zone
	now     time.Time

	spinner spinner.Model
	keys    watchKeyMap
	help    help.Model
	done    bool
}

func newWatchModel(cur *domain.CurrentStretch, clk clock.Clock, zone *clock.Zone) *watchModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = formatter.StylePurple
	return &watchModel{
		current: cur,
		clock:   clk,
		zone:    zone,
		now:     clk.Now(),
		spinner: sp,
		keys: watchKeyMap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help: help.New(),
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return watchTickMsg(t) })
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, watchTick())
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchTickMsg:
		m.now = m.clock.Now()
		return m, watchTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *watchModel) View() string {
	line := formatter.FormatCurrent(m.current, m.zone.In(m.current.Stretch.Start), m.now)
	if m.done {
		return line + "\n"
	}
	return m.spinner.View() + " " + line + "\n\n" + m.help.View(m.keys) + "\n"
}
