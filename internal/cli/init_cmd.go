package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/logtime/internal/shell"
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init SHELL",
		Short: "Print the shell function that lets logtime change directory",
		Long: fmt.Sprintf(`Print a shell function wrapping logtime. Add it to your shell startup:

  eval "$(logtime init bash)"      # bash, zsh, sh
  logtime init fish | source        # fish

Supported shells: %s.`, strings.Join(shell.DialectNames(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.DialectNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			binary := app.BinaryPath
			if binary == "" {
				binary = "logtime"
			}
			src, err := shell.Wrapper(args[0], name, binary)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), src)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "logtime", "Name of the shell function")

	return cmd
}
