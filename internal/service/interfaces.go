package service

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/logtime/internal/domain"
)

// HierarchyService materializes projects, tasks and subtasks on first
// reference.
type HierarchyService interface {
	GetOrCreateProject(ctx context.Context, code string) (*domain.Project, error)
	GetOrCreateTask(ctx context.Context, project *domain.Project, number int64) (*domain.Task, error)
	GetOrCreateSubtask(ctx context.Context, task *domain.Task, number int64) (*domain.Subtask, error)
	// LatestSubtask returns the task's highest-numbered subtask, creating
	// subtask 1 when the task has none.
	LatestSubtask(ctx context.Context, task *domain.Task) (*domain.Subtask, error)
	Resolve(ctx context.Context, spec domain.SubtaskSpec) (*domain.WorkItem, error)
	ResolveCode(ctx context.Context, code string) (*domain.WorkItem, error)
	SetSubtaskDetails(ctx context.Context, spec domain.SubtaskSpec, details SubtaskDetails) (*domain.WorkItem, error)
}

// SubtaskDetails carries optional subtask attributes. Nil fields are left
// unchanged.
type SubtaskDetails struct {
	Branch      *string
	Description *string
}

// IsEmpty reports whether no attribute would change.
func (d SubtaskDetails) IsEmpty() bool {
	return d.Branch == nil && d.Description == nil
}

type StretchService interface {
	// Begin opens a stretch on subtask starting now. It does not look at
	// other open stretches.
	Begin(ctx context.Context, subtask *domain.Subtask) (*domain.Stretch, error)
	StopAll(ctx context.Context) (int64, error)
	StopAllAt(ctx context.Context, timestamp string) (int64, error)
	// Current returns the most recently started open stretch, or nil.
	Current(ctx context.Context) (*domain.CurrentStretch, error)
	Switch(ctx context.Context, code string) (*SwitchResult, error)
	// SwitchWith is Switch that also records details on the target subtask
	// in the same transaction.
	SwitchWith(ctx context.Context, code string, details SubtaskDetails) (*SwitchResult, error)
}

// SwitchResult describes the outcome of a switch.
type SwitchResult struct {
	WorkItem *domain.WorkItem
	Stretch  *domain.Stretch
	Stopped  int64
}

type ReportService interface {
	// TimeSince totals time per local date and work-item code for every
	// date from from through today.
	TimeSince(ctx context.Context, from civil.Date) (*domain.Report, error)
}

type ProjectService interface {
	Show(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, code string, upd ProjectUpdate) (*domain.Project, error)
}

// ProjectUpdate carries optional project attributes. Nil fields are left
// unchanged; a pointer to "" clears the attribute.
type ProjectUpdate struct {
	Directory *string
	Name      *string
}
