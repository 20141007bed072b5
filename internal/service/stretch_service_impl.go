package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/repository"
)

type stretchService struct {
	stretches repository.StretchRepo
	subtasks  repository.SubtaskRepo
	uow       db.UnitOfWork
	clock     clock.Clock
	zone      *clock.Zone
	observer  UseCaseObserver
}

func NewStretchService(
	stretches repository.StretchRepo,
	subtasks repository.SubtaskRepo,
	uow db.UnitOfWork,
	clk clock.Clock,
	zone *clock.Zone,
	observers ...UseCaseObserver,
) StretchService {
	return &stretchService{
		stretches: stretches,
		subtasks:  subtasks,
		uow:       uow,
		clock:     clk,
		zone:      zone,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *stretchService) Begin(ctx context.Context, subtask *domain.Subtask) (*domain.Stretch, error) {
	stretch := &domain.Stretch{SubtaskID: subtask.ID, Start: s.clock.Now()}
	if err := s.stretches.Create(ctx, stretch); err != nil {
		return nil, domain.AsStorage("begin stretch", err)
	}
	return stretch, nil
}

func (s *stretchService) StopAll(ctx context.Context) (n int64, err error) {
	uc := startUseCase(s.observer, "stop", nil)
	defer func() { uc.done(ctx, err) }()

	n, err = s.stretches.CloseOpen(ctx, s.clock.Now())
	if err != nil {
		return 0, domain.AsStorage("stop stretches", err)
	}
	uc.fields["stopped"] = n
	return n, nil
}

// StopAllAt closes every open stretch at the instant described by timestamp.
// An instant before the start of any open stretch is rejected and nothing
// is closed.
func (s *stretchService) StopAllAt(ctx context.Context, timestamp string) (n int64, err error) {
	uc := startUseCase(s.observer, "stop", map[string]any{"at": timestamp})
	defer func() { uc.done(ctx, err) }()

	var end time.Time
	end, err = s.zone.ParseTimestamp(timestamp, s.clock.Now())
	if err != nil {
		return 0, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteStretchRepo(tx)
		open, err := repo.ListOpen(ctx)
		if err != nil {
			return err
		}
		for _, st := range open {
			if end.Before(st.Start) {
				return domain.Invalid("timestamp", "%s is before the open stretch started at %s",
					s.zone.In(end).Format(time.DateTime), s.zone.In(st.Start).Format(time.DateTime))
			}
		}
		n, err = repo.CloseOpen(ctx, end)
		return err
	})
	if err != nil {
		return 0, domain.AsStorage("stop stretches", err)
	}
	uc.fields["stopped"] = n
	return n, nil
}

func (s *stretchService) Current(ctx context.Context) (*domain.CurrentStretch, error) {
	st, err := s.stretches.Current(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.AsStorage("current stretch", err)
	}
	wi, err := s.subtasks.GetWorkItem(ctx, st.SubtaskID)
	if err != nil {
		return nil, domain.AsStorage("current stretch", err)
	}
	return &domain.CurrentStretch{Stretch: st, WorkItem: wi}, nil
}

func (s *stretchService) Switch(ctx context.Context, code string) (*SwitchResult, error) {
	return s.SwitchWith(ctx, code, SubtaskDetails{})
}

// SwitchWith stops whatever is running, resolves code, applies details and
// opens a stretch on it, all in one transaction. The stop and the start
// share one clock reading so the old stretch never ends after the new one
// begins.
func (s *stretchService) SwitchWith(ctx context.Context, code string, details SubtaskDetails) (res *SwitchResult, err error) {
	uc := startUseCase(s.observer, "switch", map[string]any{"code": code})
	defer func() { uc.done(ctx, err) }()

	var spec domain.SubtaskSpec
	spec, err = domain.ParseCode(code)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	res = &SwitchResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		stretches := repository.NewSQLiteStretchRepo(tx)

		stopped, err := stretches.CloseOpen(ctx, now)
		if err != nil {
			return err
		}
		res.Stopped = stopped

		r := newResolver(tx)
		wi, err := r.resolve(ctx, spec)
		if err != nil {
			return err
		}
		if err := r.applyDetails(ctx, wi, details); err != nil {
			return err
		}
		res.WorkItem = wi

		stretch := &domain.Stretch{SubtaskID: wi.Subtask.ID, Start: now}
		if err := stretches.Create(ctx, stretch); err != nil {
			return fmt.Errorf("opening stretch on %s: %w", wi.Code(), err)
		}
		res.Stretch = stretch
		return nil
	})
	if err != nil {
		return nil, domain.AsStorage("switch", err)
	}
	uc.fields["resolved"] = res.WorkItem.Code()
	uc.fields["stopped"] = res.Stopped
	return res, nil
}
