package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/logtime/internal/cli/formatter"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/repository"
	"github.com/alexanderramin/logtime/internal/service"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect and configure projects",
	}

	cmd.AddCommand(
		newProjectShowCmd(app),
		newProjectListCmd(app),
		newProjectSetCmd(app),
	)

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "show CODE",
		Short:             "Show project details",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectCodes(app, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Show(cmd.Context(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("project %q not found", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProject(p))
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectSetCmd(app *App) *cobra.Command {
	var dir, name string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "set CODE",
		Short: "Set a project's directory or name",
		Long: `Set the directory "logtime switch" moves into and the display name of a
project. The project is created if it does not exist yet. An empty value
clears the attribute.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectCodes(app, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			code := args[0]
			if err := domain.ValidateProjectCode(code); err != nil {
				return err
			}

			upd := service.ProjectUpdate{}
			if interactive {
				if !app.interactive() {
					return domain.Invalid("interactive", "needs a terminal")
				}
				current, err := app.Projects.Show(ctx, code)
				if err != nil && !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				values := projectFormValues{}
				if current != nil {
					values.Directory = domain.StrFromPtr(current.Directory)
					values.Name = domain.StrFromPtr(current.Name)
				}
				if err := projectForm(code, &values).RunWithContext(ctx); err != nil {
					return err
				}
				dir, name = values.Directory, values.Name
				upd.Directory, upd.Name = &dir, &name
			} else {
				if cmd.Flags().Changed("dir") {
					upd.Directory = &dir
				}
				if cmd.Flags().Changed("name") {
					upd.Name = &name
				}
				if upd.Directory == nil && upd.Name == nil {
					return domain.Invalid("project", "nothing to set (use --dir, --name or --interactive)")
				}
			}

			if upd.Directory != nil && *upd.Directory != "" {
				abs, err := filepath.Abs(*upd.Directory)
				if err != nil {
					return fmt.Errorf("resolving directory: %w", err)
				}
				upd.Directory = &abs
			}

			p, err := app.Projects.Update(ctx, code, upd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProject(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to cd into on switch")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the values in a form")
	cmd.MarkFlagsMutuallyExclusive("interactive", "dir")
	cmd.MarkFlagsMutuallyExclusive("interactive", "name")

	return cmd
}
