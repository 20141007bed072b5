package clock

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/alexanderramin/logtime/internal/domain"
)

// DateLayout is the textual form of a calendar date.
const DateLayout = "2006-01-02"

// wallLayouts are accepted for local timestamps without an offset.
var wallLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDate parses a YYYY-MM-DD calendar date. Dates carry no zone, so
// this is the same for every Zone.
func (z *Zone) ParseDate(s string) (civil.Date, error) {
	return ParseDate(s)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil || !d.IsValid() {
		return civil.Date{}, domain.Invalid("date", "%q is not a YYYY-MM-DD date", s)
	}
	return d, nil
}

// ParseTimestamp parses s in three layers: RFC3339 with an explicit offset,
// a local wall-clock timestamp in the zone, then a natural-language
// expression ("yesterday 6pm", "noon") relative to now.
func (z *Zone) ParseTimestamp(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.Invalid("timestamp", "must not be empty")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(z.loc), nil
	}

	for _, layout := range wallLayouts {
		naive, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return z.Resolve(civil.DateTimeOf(naive), Earliest), nil
	}

	if t, ok := z.parseNatural(s, now); ok {
		return t, nil
	}
	return time.Time{}, domain.Invalid("timestamp", "cannot parse %q", s)
}

func (z *Zone) parseNatural(s string, now time.Time) (time.Time, bool) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(s, now.In(z.loc))
	if err != nil || r == nil {
		return time.Time{}, false
	}
	// Reject input where only a fragment was understood.
	if !strings.EqualFold(strings.TrimSpace(r.Text), s) {
		return time.Time{}, false
	}
	return r.Time.In(z.loc), true
}
