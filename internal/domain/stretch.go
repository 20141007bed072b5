package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Stretch is one contiguous interval of work on a subtask. End is nil while
// the stretch is open.
type Stretch struct {
	ID        int64
	SubtaskID int64
	Start     time.Time
	End       *time.Time
}

// Calendar maps instants onto local calendar dates.
type Calendar interface {
	DateOf(t time.Time) civil.Date
}

func (s *Stretch) IsOpen() bool {
	return s.End == nil
}

// Elapsed returns the stretch duration, measuring open stretches up to now.
func (s *Stretch) Elapsed(now time.Time) time.Duration {
	end := now
	if s.End != nil {
		end = *s.End
	}
	if end.Before(s.Start) {
		return 0
	}
	return end.Sub(s.Start)
}

// Dates enumerates every local date from the start date to the end date
// inclusive. An open stretch has no end date and yields nothing.
func (s *Stretch) Dates(cal Calendar) []civil.Date {
	if s.End == nil {
		return nil
	}
	first := cal.DateOf(s.Start)
	last := cal.DateOf(*s.End)
	var dates []civil.Date
	for d := first; !d.After(last); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// CurrentStretch is an open stretch together with what it is being spent on.
type CurrentStretch struct {
	Stretch  *Stretch
	WorkItem *WorkItem
}

// CodedStretch is a stretch labelled with its work-item code.
type CodedStretch struct {
	Stretch Stretch
	Code    string
}
