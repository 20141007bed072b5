package cli

import (
	"fmt"

	"github.com/alexanderramin/logtime/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCurrentCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show what is being timed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := app.Stretches.Current(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cur == nil {
				fmt.Fprintln(out, formatter.NoCurrent)
				return nil
			}

			if watch && app.interactive() {
				p := tea.NewProgram(newWatchModel(cur, app.Clock, app.Zone),
					tea.WithContext(cmd.Context()), tea.WithOutput(out), tea.WithInput(cmd.InOrStdin()))
				_, err := p.Run()
				return err
			}

			now := app.Clock.Now()
			fmt.Fprintln(out, formatter.FormatCurrent(cur, app.Zone.In(cur.Stretch.Start), now))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the elapsed time ticking until q is pressed")

	return cmd
}
