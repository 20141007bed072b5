package service

import (
	"context"

	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProjectService {
	return &projectService{projects: projects, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *projectService) Show(ctx context.Context, code string) (*domain.Project, error) {
	if err := domain.ValidateProjectCode(code); err != nil {
		return nil, err
	}
	p, err := s.projects.GetByCode(ctx, code)
	if err != nil {
		return nil, domain.AsStorage("show project", err)
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, domain.AsStorage("list projects", err)
	}
	return projects, nil
}

// Update sets directory and name on the project, creating it if this is its
// first reference.
func (s *projectService) Update(ctx context.Context, code string, upd ProjectUpdate) (p *domain.Project, err error) {
	uc := startUseCase(s.observer, "update-project", map[string]any{"code": code})
	defer func() { uc.done(ctx, err) }()

	if err = domain.ValidateProjectCode(code); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		var err error
		p, err = repo.GetOrCreate(ctx, code)
		if err != nil {
			return err
		}
		if upd.Directory != nil {
			p.Directory = domain.StrPtr(*upd.Directory)
		}
		if upd.Name != nil {
			p.Name = domain.StrPtr(*upd.Name)
		}
		return repo.Update(ctx, p)
	})
	if err != nil {
		return nil, domain.AsStorage("update project", err)
	}
	return p, nil
}
