package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/logtime/internal/cli/formatter"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Report output formats.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// reportDoc is the machine-readable report layout.
type reportDoc struct {
	Zone  string             `json:"zone" yaml:"zone"`
	From  string             `json:"from" yaml:"from"`
	Until string             `json:"until" yaml:"until"`
	Days  []domain.ReportDay `json:"days" yaml:"days"`
}

func newReportCmd(app *App) *cobra.Command {
	var since dateFlag
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show time per day and work item",
		Long: `Show the time spent on each work item per calendar day, from --since
(default today) through today. Stretches crossing midnight are split between
days. Stretches still running are not counted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateReportFormat(format); err != nil {
				return err
			}
			today := app.Zone.Today(app.Clock.Now())
			report, err := app.Reports.TimeSince(cmd.Context(), since.Or(today))
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), format, app.Zone.String(), report)
		},
	}

	cmd.Flags().Var(&since, "since", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, table, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatText, formatTable, formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func validateReportFormat(format string) error {
	switch format {
	case formatText, formatTable, formatJSON, formatYAML:
		return nil
	}
	return domain.Invalid("format", "unknown format %q (want text, table, json or yaml)", format)
}

func writeReport(w io.Writer, format, zone string, r *domain.Report) error {
	doc := reportDoc{Zone: zone, From: r.From.String(), Until: r.Until.String(), Days: r.Days()}

	switch format {
	case formatText:
		_, err := io.WriteString(w, formatter.FormatReportText(doc.Days))
		return err
	case formatTable:
		_, err := fmt.Fprintln(w, formatter.FormatReportTable(r, r.Until))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validateReportFormat(format)
	}
}
