package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/logtime/internal/domain"
)

// NoCurrent is printed when no stretch is open.
const NoCurrent = "No current task"

// FormatCurrent renders the open stretch as one line:
// "ACME-1-1  0:42:7  since 2023-01-01 09:00:00". start is expected in the
// display zone already.
func FormatCurrent(cur *domain.CurrentStretch, start time.Time, now time.Time) string {
	if cur == nil {
		return NoCurrent
	}
	line := fmt.Sprintf("%s  %s  %s",
		Code(cur.WorkItem.Code()),
		Elapsed(domain.FormatDuration(cur.Stretch.Elapsed(now))),
		Dim("since "+start.Format(time.DateTime)),
	)
	if b := domain.StrFromPtr(cur.WorkItem.Subtask.Branch); b != "" {
		line += "  " + StylePurple.Render(b)
	}
	if d := domain.StrFromPtr(cur.WorkItem.Subtask.Description); d != "" {
		line += "\n" + Dim(d)
	}
	return line
}
