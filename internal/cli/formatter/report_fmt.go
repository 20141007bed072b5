package formatter

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/logtime/internal/domain"
)

// FormatReportText renders the plain day listing:
//
//	2023-01-01:
//	  ACME-1-1: 1:0:0
//
// The layout is fixed so scripts can parse it; no styling is applied.
func FormatReportText(days []domain.ReportDay) string {
	var b strings.Builder
	for _, day := range days {
		b.WriteString(day.Date)
		b.WriteString(":\n")
		for _, e := range day.Entries {
			b.WriteString("  ")
			b.WriteString(e.Code)
			b.WriteString(": ")
			b.WriteString(e.Elapsed)
			b.WriteString("\n")
		}
	}
	return b.String()
}

const shareBarWidth = 10

// FormatReportTable renders the report as a styled table with a per-day
// relative label, each entry's share of its day and a grand total.
func FormatReportTable(r *domain.Report, today civil.Date) string {
	days := r.Days()
	if len(days) == 0 {
		return Dim("No time recorded since "+r.From.String()) + "\n"
	}

	t := NewTable("DATE", "WHEN", "CODE", "ELAPSED", "SHARE").AlignRight(3)
	var total time.Duration
	for _, day := range days {
		d, _ := civil.ParseDate(day.Date)
		var dayTotal time.Duration
		for _, e := range day.Entries {
			dayTotal += e.Duration
		}
		for i, e := range day.Entries {
			date, when := "", ""
			if i == 0 {
				date, when = day.Date, Dim(RelativeDay(d, today))
			}
			share := float64(e.Duration) / float64(dayTotal)
			t.AddRow(date, when, Code(e.Code), Elapsed(e.Elapsed), RenderShare(share, shareBarWidth))
		}
		total += dayTotal
	}
	t.AddRow("", "", Bold("total"), Bold(domain.FormatDuration(total)), "")

	return RenderBox("Time since "+r.From.String(), strings.TrimRight(t.Render(), "\n"))
}
