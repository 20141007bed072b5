package cli

import (
	"strings"

	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/spf13/cobra"
)

// completeProjectCodes completes the first argument with known project
// codes. With suffix set each candidate ends in the code separator, so the
// shell keeps going into the task number.
func completeProjectCodes(app *App, suffix bool) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) > 0 || strings.Contains(toComplete, domain.CodeSeparator) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		projects, err := app.Projects.List(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		directive := cobra.ShellCompDirectiveNoFileComp
		if suffix {
			directive |= cobra.ShellCompDirectiveNoSpace
		}
		var out []cobra.Completion
		for _, p := range projects {
			if !strings.HasPrefix(p.Code, toComplete) {
				continue
			}
			c := p.Code
			if suffix {
				c += domain.CodeSeparator
			}
			out = append(out, cobra.CompletionWithDesc(c, p.DisplayName()))
		}
		return out, directive
	}
}
