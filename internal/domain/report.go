package domain

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
)

// Report holds accumulated durations per local date and work-item code.
type Report struct {
	From  civil.Date
	Until civil.Date
	Total map[civil.Date]map[string]time.Duration
}

func NewReport(from, until civil.Date) *Report {
	return &Report{From: from, Until: until, Total: make(map[civil.Date]map[string]time.Duration)}
}

// Add accumulates d for code on date. Non-positive durations are ignored.
func (r *Report) Add(date civil.Date, code string, d time.Duration) {
	if d <= 0 {
		return
	}
	day, ok := r.Total[date]
	if !ok {
		day = make(map[string]time.Duration)
		r.Total[date] = day
	}
	day[code] += d
}

// ReportEntry is one work item's total on one day.
type ReportEntry struct {
	Code     string        `json:"code" yaml:"code"`
	Duration time.Duration `json:"-" yaml:"-"`
	Elapsed  string        `json:"elapsed" yaml:"elapsed"`
	Seconds  int64         `json:"seconds" yaml:"seconds"`
}

// ReportDay is one date's entries ordered by code.
type ReportDay struct {
	Date    string        `json:"date" yaml:"date"`
	Entries []ReportEntry `json:"entries" yaml:"entries"`
}

// Days returns the report ordered by date, then by code.
func (r *Report) Days() []ReportDay {
	dates := make([]civil.Date, 0, len(r.Total))
	for d := range r.Total {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	days := make([]ReportDay, 0, len(dates))
	for _, d := range dates {
		byCode := r.Total[d]
		codes := make([]string, 0, len(byCode))
		for c := range byCode {
			codes = append(codes, c)
		}
		sort.Strings(codes)

		day := ReportDay{Date: d.String(), Entries: make([]ReportEntry, 0, len(codes))}
		for _, c := range codes {
			dur := byCode[c]
			day.Entries = append(day.Entries, ReportEntry{
				Code:     c,
				Duration: dur,
				Elapsed:  FormatDuration(dur),
				Seconds:  int64(dur / time.Second),
			})
		}
		days = append(days, day)
	}
	return days
}

// FormatDuration renders d as hours:minutes:seconds without padding. Hours
// are not wrapped at 24.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%d:%d", secs/3600, secs/60%60, secs%60)
}
