package service

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/repository"
)

type reportService struct {
	stretches repository.StretchRepo
	clock     clock.Clock
	zone      *clock.Zone
	observer  UseCaseObserver
}

func NewReportService(stretches repository.StretchRepo, clk clock.Clock, zone *clock.Zone, observers ...UseCaseObserver) ReportService {
	return &reportService{
		stretches: stretches,
		clock:     clk,
		zone:      zone,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// TimeSince splits every closed stretch touching [from, today] at local
// midnights and sums the pieces per date and code. Open stretches are not
// counted.
func (s *reportService) TimeSince(ctx context.Context, from civil.Date) (report *domain.Report, err error) {
	uc := startUseCase(s.observer, "report", map[string]any{"since": from.String()})
	defer func() { uc.done(ctx, err) }()

	today := s.zone.Today(s.clock.Now())
	report = domain.NewReport(from, today)
	if from.After(today) {
		return report, nil
	}

	rangeStart := s.zone.DayStart(from)
	rangeEnd := s.zone.DayEnd(today)
	stretches, err := s.stretches.ListOverlapping(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, domain.AsStorage("report", err)
	}

	for _, cs := range stretches {
		for _, d := range cs.Stretch.Dates(s.zone) {
			if d.Before(from) || d.After(today) {
				continue
			}
			report.Add(d, cs.Code, s.dayShare(&cs.Stretch, d))
		}
	}
	uc.fields["stretches"] = len(stretches)
	uc.fields["days"] = len(report.Total)
	return report, nil
}

// dayShare is the part of a closed stretch that falls inside local date d.
func (s *reportService) dayShare(st *domain.Stretch, d civil.Date) time.Duration {
	start := st.Start
	if dayStart := s.zone.DayStart(d); dayStart.After(start) {
		start = dayStart
	}
	end := *st.End
	if dayEnd := s.zone.DayEnd(d); dayEnd.Before(end) {
		end = dayEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}
