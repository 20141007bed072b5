package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running stretch",
		Long: `Stop every open stretch now, or at the time given by --at.

--at accepts "2006-01-02 15:04[:05]" in the configured zone, RFC 3339,
or phrases such as "10 minutes ago" and "yesterday at 6pm".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var n int64
			var err error
			if cmd.Flags().Changed("at") {
				n, err = app.Stretches.StopAllAt(ctx, at)
			} else {
				n, err = app.Stretches.StopAll(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch n {
			case 0:
				fmt.Fprintln(out, "Nothing to stop")
			case 1:
				fmt.Fprintln(out, "Stopped 1 stretch")
			default:
				fmt.Fprintf(out, "Stopped %d stretches\n", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "When the work stopped")

	return cmd
}
