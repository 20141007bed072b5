// Package clock holds all local-calendar arithmetic. Every day boundary is
// computed in one fixed, explicitly configured zone; the host zone is never
// consulted.
package clock

import (
	"sort"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"

	"github.com/alexanderramin/logtime/internal/domain"
)

// Pick selects among the UTC instants a local wall-clock time maps to.
type Pick int

const (
	// Earliest picks the first instant of an ambiguous wall-clock time.
	Earliest Pick = iota
	// Latest picks the last instant of an ambiguous wall-clock time.
	Latest
)

// Zone performs day-boundary math in a single time zone.
type Zone struct {
	loc *time.Location
}

// LoadZone loads an IANA zone by name, e.g. "Europe/Berlin" or "UTC".
func LoadZone(name string) (*Zone, error) {
	if name == "" {
		return nil, domain.Invalid("timezone", "must not be empty")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.Invalid("timezone", "unknown zone %q", name)
	}
	return &Zone{loc: loc}, nil
}

// MustLoadZone is LoadZone for zone names known at compile time.
func MustLoadZone(name string) *Zone {
	z, err := LoadZone(name)
	if err != nil {
		panic(err)
	}
	return z
}

func (z *Zone) Location() *time.Location {
	return z.loc
}

func (z *Zone) String() string {
	return z.loc.String()
}

// In converts t to the zone.
func (z *Zone) In(t time.Time) time.Time {
	return t.In(z.loc)
}

// DateOf returns the local calendar date of t.
func (z *Zone) DateOf(t time.Time) civil.Date {
	return civil.DateOf(t.In(z.loc))
}

// Today returns the local date at now.
func (z *Zone) Today(now time.Time) civil.Date {
	return z.DateOf(now)
}

// DayStart returns the first instant of local date d.
func (z *Zone) DayStart(d civil.Date) time.Time {
	return z.Resolve(civil.DateTime{Date: d}, Earliest)
}

// DayEnd returns the exclusive end of local date d, i.e. the latest instant
// that maps to midnight of the following day.
func (z *Zone) DayEnd(d civil.Date) time.Time {
	return z.Resolve(civil.DateTime{Date: d.AddDays(1)}, Latest)
}

// Resolve maps a local wall-clock time to a UTC instant. When the wall-clock
// time occurs twice (clocks turned back) pick decides which occurrence wins.
// When it never occurs (clocks turned forward) the result is the transition
// instant, the first moment whose wall clock is past dt.
func (z *Zone) Resolve(dt civil.DateTime, pick Pick) time.Time {
	naive := time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Nanosecond, time.UTC)

	var matches, candidates []time.Time
	seen := make(map[int]bool, 3)
	for _, shift := range []time.Duration{-36 * time.Hour, 0, 36 * time.Hour} {
		_, offset := naive.Add(shift).In(z.loc).Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true
		u := naive.Add(-time.Duration(offset) * time.Second)
		candidates = append(candidates, u)
		if sameWall(u.In(z.loc), naive) {
			matches = append(matches, u)
		}
	}

	if len(matches) == 0 {
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })
		after := candidates[len(candidates)-1].In(z.loc)
		start, _ := after.ZoneBounds()
		if start.IsZero() {
			return after
		}
		return start.In(z.loc)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Before(matches[j]) })
	if pick == Latest {
		return matches[len(matches)-1].In(z.loc)
	}
	return matches[0].In(z.loc)
}

func sameWall(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() &&
		a.Second() == b.Second() && a.Nanosecond() == b.Nanosecond()
}
