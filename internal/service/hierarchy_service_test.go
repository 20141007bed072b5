package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64 { return &n }

func TestHierarchy_ResolveIsIdempotent(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	first, err := env.hierarchy.ResolveCode(ctx, "ACME-1-1")
	require.NoError(t, err)
	second, err := env.hierarchy.ResolveCode(ctx, "ACME-1-1")
	require.NoError(t, err)

	assert.Equal(t, first.Project.ID, second.Project.ID)
	assert.Equal(t, first.Task.ID, second.Task.ID)
	assert.Equal(t, first.Subtask.ID, second.Subtask.ID)
	assert.Equal(t, "ACME-1-1", second.Code())

	assert.Equal(t, 1, env.count(t, "projects"))
	assert.Equal(t, 1, env.count(t, "tasks"))
	assert.Equal(t, 1, env.count(t, "subtasks"))
}

func TestHierarchy_ImplicitSubtask(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	wi, err := env.hierarchy.ResolveCode(ctx, "ACME-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), wi.Subtask.Number, "a new task starts at subtask 1")
	assert.True(t, wi.Subtask.Active)

	_, err = env.hierarchy.GetOrCreateSubtask(ctx, wi.Task, 5)
	require.NoError(t, err)
	_, err = env.hierarchy.GetOrCreateSubtask(ctx, wi.Task, 3)
	require.NoError(t, err)

	latest, err := env.hierarchy.ResolveCode(ctx, "ACME-2")
	require.NoError(t, err)
	assert.Equal(t, int64(5), latest.Subtask.Number)
	assert.Equal(t, "ACME-2-5", latest.Code())
}

func TestHierarchy_LatestSubtask(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	project, err := env.hierarchy.GetOrCreateProject(ctx, "ACME")
	require.NoError(t, err)
	task, err := env.hierarchy.GetOrCreateTask(ctx, project, 9)
	require.NoError(t, err)

	sub, err := env.hierarchy.LatestSubtask(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.Number)

	again, err := env.hierarchy.LatestSubtask(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, again.ID)
}

func TestHierarchy_RecordsActiveSubtask(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	_, err := env.hierarchy.ResolveCode(ctx, "ACME-1-4")
	require.NoError(t, err)
	wi, err := env.hierarchy.ResolveCode(ctx, "ACME-1-2")
	require.NoError(t, err)
	require.NotNil(t, wi.Task.ActiveSubtask)
	assert.Equal(t, int64(2), *wi.Task.ActiveSubtask)

	task, err := repository.NewSQLiteTaskRepo(env.db).Get(ctx, wi.Project.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, task.ActiveSubtask)
	assert.Equal(t, int64(2), *task.ActiveSubtask)
}

func TestHierarchy_RejectsMalformedCodes(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	codes := []string{"", "ACME", "ACME-", "-1", "ACME-x", "ACME-1-y", "ACME-1-2-3", "ACME-0", "ACME-1--1"}
	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			_, err := env.hierarchy.ResolveCode(ctx, code)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.NotErrorIs(t, err, domain.ErrStorage)
		})
	}
	assert.Zero(t, env.count(t, "projects"), "validation happens before any write")
}

func TestHierarchy_RejectsInvalidProjectCode(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	for _, code := range []string{"", "AC-ME", "AC ME"} {
		_, err := env.hierarchy.GetOrCreateProject(ctx, code)
		assert.ErrorIs(t, err, domain.ErrValidation, "code %q", code)
	}

	_, err := env.hierarchy.Resolve(ctx, domain.SubtaskSpec{ProjectCode: "ACME", Task: 1, Subtask: int64Ptr(0)})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, env.count(t, "projects"))
}

func TestHierarchy_SetSubtaskDetails(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()
	spec := domain.SubtaskSpec{ProjectCode: "ACME", Task: 3, Subtask: int64Ptr(1)}

	branch := "feature/export"
	wi, err := env.hierarchy.SetSubtaskDetails(ctx, spec, SubtaskDetails{Branch: &branch})
	require.NoError(t, err)
	assert.Equal(t, branch, domain.StrFromPtr(wi.Subtask.Branch))
	assert.Nil(t, wi.Subtask.Description)

	desc := "CSV export"
	_, err = env.hierarchy.SetSubtaskDetails(ctx, spec, SubtaskDetails{Description: &desc})
	require.NoError(t, err)

	got, err := env.hierarchy.Resolve(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, branch, domain.StrFromPtr(got.Subtask.Branch), "unset fields are kept")
	assert.Equal(t, desc, domain.StrFromPtr(got.Subtask.Description))
}
