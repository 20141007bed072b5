package service

import (
	"context"

	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
)

type hierarchyService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewHierarchyService(uow db.UnitOfWork, observers ...UseCaseObserver) HierarchyService {
	return &hierarchyService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *hierarchyService) GetOrCreateProject(ctx context.Context, code string) (*domain.Project, error) {
	if err := domain.ValidateProjectCode(code); err != nil {
		return nil, err
	}
	var project *domain.Project
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		project, err = newResolver(tx).project(ctx, code)
		return err
	})
	if err != nil {
		return nil, domain.AsStorage("get-or-create project", err)
	}
	return project, nil
}

func (s *hierarchyService) GetOrCreateTask(ctx context.Context, project *domain.Project, number int64) (*domain.Task, error) {
	if err := validateNumber("task number", number); err != nil {
		return nil, err
	}
	var task *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		task, err = newResolver(tx).task(ctx, project, number)
		return err
	})
	if err != nil {
		return nil, domain.AsStorage("get-or-create task", err)
	}
	return task, nil
}

func (s *hierarchyService) GetOrCreateSubtask(ctx context.Context, task *domain.Task, number int64) (*domain.Subtask, error) {
	if err := validateNumber("subtask number", number); err != nil {
		return nil, err
	}
	var sub *domain.Subtask
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		sub, err = newResolver(tx).subtask(ctx, task, number)
		return err
	})
	if err != nil {
		return nil, domain.AsStorage("get-or-create subtask", err)
	}
	return sub, nil
}

func (s *hierarchyService) LatestSubtask(ctx context.Context, task *domain.Task) (*domain.Subtask, error) {
	var sub *domain.Subtask
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		sub, err = newResolver(tx).latest(ctx, task)
		return err
	})
	if err != nil {
		return nil, domain.AsStorage("latest subtask", err)
	}
	return sub, nil
}

func (s *hierarchyService) Resolve(ctx context.Context, spec domain.SubtaskSpec) (wi *domain.WorkItem, err error) {
	uc := startUseCase(s.observer, "resolve", map[string]any{"code": spec.Code()})
	defer func() { uc.done(ctx, err) }()

	if err = validateSpec(spec); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		wi, err = newResolver(tx).resolve(ctx, spec)
		return err
	})
	if err != nil {
		return nil, domain.AsStorage("resolve", err)
	}
	uc.fields["resolved"] = wi.Code()
	return wi, nil
}

func (s *hierarchyService) ResolveCode(ctx context.Context, code string) (*domain.WorkItem, error) {
	spec, err := domain.ParseCode(code)
	if err != nil {
		return nil, err
	}
	return s.Resolve(ctx, spec)
}

func (s *hierarchyService) SetSubtaskDetails(ctx context.Context, spec domain.SubtaskSpec, details SubtaskDetails) (wi *domain.WorkItem, err error) {
	uc := startUseCase(s.observer, "set-subtask-details", map[string]any{"code": spec.Code()})
	defer func() { uc.done(ctx, err) }()

	if err = validateSpec(spec); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := newResolver(tx)
		var err error
		wi, err = r.resolve(ctx, spec)
		if err != nil {
			return err
		}
		return r.applyDetails(ctx, wi, details)
	})
	if err != nil {
		return nil, domain.AsStorage("set subtask details", err)
	}
	return wi, nil
}
