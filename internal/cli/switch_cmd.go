package cli

import (
	"fmt"

	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/service"
	"github.com/alexanderramin/logtime/internal/shell"
	"github.com/spf13/cobra"
)

func newSwitchCmd(app *App) *cobra.Command {
	var branch, description, from string
	var newBranch bool

	cmd := &cobra.Command{
		Use:   "switch CODE",
		Short: "Stop the running stretch and start one on CODE",
		Long: `Stop whatever is running and start timing CODE, which is
PROJECT-TASK-SUBTASK or PROJECT-TASK (the task's latest subtask).
Projects, tasks and subtasks are created on first use.

With a shell wrapper installed (see "logtime init"), the shell then moves
into the project directory and checks out the subtask branch.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectCodes(app, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			code := args[0]

			if _, err := domain.ParseCode(code); err != nil {
				return err
			}
			if newBranch && branch == "" {
				return domain.Invalid("branch", "--new-branch needs --branch")
			}
			if from != "" && !newBranch {
				return domain.Invalid("from", "--from only applies with --new-branch")
			}

			details := service.SubtaskDetails{}
			if cmd.Flags().Changed("branch") {
				details.Branch = &branch
			}
			if cmd.Flags().Changed("description") {
				details.Description = &description
			}
			res, err := app.Stretches.SwitchWith(ctx, code, details)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s\n", res.WorkItem.Code())

			return emitSwitch(app.shell(), res.WorkItem, newBranch, from)
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Git branch to record for the subtask")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description to record for the subtask")
	cmd.Flags().BoolVar(&newBranch, "new-branch", false, "Create the branch instead of checking it out")
	cmd.Flags().StringVar(&from, "from", "", "Start point for --new-branch (not tracked)")

	return cmd
}

// emitSwitch tells the shell to enter the project directory and get onto
// the subtask branch.
func emitSwitch(sh shell.Shell, wi *domain.WorkItem, newBranch bool, from string) error {
	if dir := domain.StrFromPtr(wi.Project.Directory); dir != "" {
		if err := sh.Cd(dir); err != nil {
			return err
		}
	}
	branch := domain.StrFromPtr(wi.Subtask.Branch)
	if branch == "" {
		return nil
	}
	if newBranch {
		return shell.CreateBranch(sh, branch, from)
	}
	return shell.Checkout(sh, branch)
}
