package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/repository"
)

// resolver walks the project/task/subtask hierarchy on one transaction,
// creating missing levels as it goes.
type resolver struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	subtasks repository.SubtaskRepo
}

func newResolver(tx db.DBTX) *resolver {
	return &resolver{
		projects: repository.NewSQLiteProjectRepo(tx),
		tasks:    repository.NewSQLiteTaskRepo(tx),
		subtasks: repository.NewSQLiteSubtaskRepo(tx),
	}
}

func (r *resolver) project(ctx context.Context, code string) (*domain.Project, error) {
	p, err := r.projects.GetOrCreate(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", code, err)
	}
	return p, nil
}

func (r *resolver) task(ctx context.Context, project *domain.Project, number int64) (*domain.Task, error) {
	t, err := r.tasks.GetOrCreate(ctx, project.ID, number)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", domain.FormatCode(project.Code, number), err)
	}
	return t, nil
}

func (r *resolver) subtask(ctx context.Context, task *domain.Task, number int64) (*domain.Subtask, error) {
	s, err := r.subtasks.GetOrCreate(ctx, task.ID, number)
	if err != nil {
		return nil, fmt.Errorf("subtask %d of task %d: %w", number, task.ID, err)
	}
	return s, nil
}

func (r *resolver) latest(ctx context.Context, task *domain.Task) (*domain.Subtask, error) {
	number, err := r.subtasks.MaxNumber(ctx, task.ID)
	if errors.Is(err, repository.ErrNotFound) {
		number = 1
	} else if err != nil {
		return nil, err
	}
	return r.subtask(ctx, task, number)
}

// resolve materializes spec and records the chosen subtask as the task's
// active one.
func (r *resolver) resolve(ctx context.Context, spec domain.SubtaskSpec) (*domain.WorkItem, error) {
	project, err := r.project(ctx, spec.ProjectCode)
	if err != nil {
		return nil, err
	}
	task, err := r.task(ctx, project, spec.Task)
	if err != nil {
		return nil, err
	}

	var sub *domain.Subtask
	if spec.Subtask == nil {
		sub, err = r.latest(ctx, task)
	} else {
		sub, err = r.subtask(ctx, task, *spec.Subtask)
	}
	if err != nil {
		return nil, err
	}

	if task.ActiveSubtask == nil || *task.ActiveSubtask != sub.Number {
		if err := r.tasks.SetActiveSubtask(ctx, task.ID, sub.Number); err != nil {
			return nil, err
		}
		active := sub.Number
		task.ActiveSubtask = &active
	}
	return &domain.WorkItem{Project: project, Task: task, Subtask: sub}, nil
}

// applyDetails writes the non-nil attributes of details onto the resolved
// subtask.
func (r *resolver) applyDetails(ctx context.Context, wi *domain.WorkItem, details SubtaskDetails) error {
	if details.IsEmpty() {
		return nil
	}
	if details.Branch != nil {
		wi.Subtask.Branch = domain.StrPtr(*details.Branch)
	}
	if details.Description != nil {
		wi.Subtask.Description = domain.StrPtr(*details.Description)
	}
	if err := r.subtasks.Update(ctx, wi.Subtask); err != nil {
		return fmt.Errorf("updating %s: %w", wi.Code(), err)
	}
	return nil
}

func validateSpec(spec domain.SubtaskSpec) error {
	if err := domain.ValidateProjectCode(spec.ProjectCode); err != nil {
		return err
	}
	if err := validateNumber("task number", spec.Task); err != nil {
		return err
	}
	if spec.Subtask != nil {
		return validateNumber("subtask number", *spec.Subtask)
	}
	return nil
}

func validateNumber(field string, n int64) error {
	if n < 1 {
		return domain.Invalid(field, "%d must be positive", n)
	}
	return nil
}
