package cli

import (
	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/alexanderramin/logtime/internal/service"
	"github.com/alexanderramin/logtime/internal/shell"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Hierarchy service.HierarchyService
	Stretches service.StretchService
	Reports   service.ReportService
	Projects  service.ProjectService

	Clock clock.Clock
	Zone  *clock.Zone

	// Shell receives the cd and git commands a switch implies. Nil means
	// no wrapper function is listening and the commands are dropped.
	Shell shell.Shell

	// BinaryPath is what `init` makes the wrapper function call.
	BinaryPath string

	// IsInteractive reports whether stdin is a terminal, gating forms.
	IsInteractive func() bool
}

func (a *App) shell() shell.Shell {
	if a.Shell == nil {
		return shell.NewMulti()
	}
	return a.Shell
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "logtime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "logtime",
		Short:         "Track time on project tasks and drive your shell between them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(service.WithRunID(cmd.Context(), uuid.NewString()))
		},
	}

	root.AddCommand(
		newSwitchCmd(app),
		newStopCmd(app),
		newCurrentCmd(app),
		newReportCmd(app),
		newProjectCmd(app),
		newInitCmd(app),
	)

	return root
}
