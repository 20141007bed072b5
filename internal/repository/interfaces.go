package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/logtime/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetByCode(ctx context.Context, code string) (*domain.Project, error)
	GetOrCreate(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	Get(ctx context.Context, projectID, number int64) (*domain.Task, error)
	GetOrCreate(ctx context.Context, projectID, number int64) (*domain.Task, error)
	SetActiveSubtask(ctx context.Context, taskID, number int64) error
}

type SubtaskRepo interface {
	Create(ctx context.Context, s *domain.Subtask) error
	Get(ctx context.Context, taskID, number int64) (*domain.Subtask, error)
	GetOrCreate(ctx context.Context, taskID, number int64) (*domain.Subtask, error)
	// MaxNumber returns the highest subtask number of a task, or ErrNotFound
	// when the task has no subtasks.
	MaxNumber(ctx context.Context, taskID int64) (int64, error)
	Update(ctx context.Context, s *domain.Subtask) error
	GetWorkItem(ctx context.Context, subtaskID int64) (*domain.WorkItem, error)
}

type StretchRepo interface {
	Create(ctx context.Context, s *domain.Stretch) error
	GetByID(ctx context.Context, id int64) (*domain.Stretch, error)
	ListOpen(ctx context.Context) ([]*domain.Stretch, error)
	// Current returns the most recently started open stretch.
	Current(ctx context.Context) (*domain.Stretch, error)
	// CloseOpen sets end on every open stretch and returns how many closed.
	CloseOpen(ctx context.Context, end time.Time) (int64, error)
	// ListOverlapping returns stretches that overlap [from, until], labelled
	// with their work-item codes.
	ListOverlapping(ctx context.Context, from, until time.Time) ([]domain.CodedStretch, error)
}
