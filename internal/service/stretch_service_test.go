package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStretch_BeginOpensAtNow(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	wi, err := env.hierarchy.ResolveCode(ctx, "ACME-1-1")
	require.NoError(t, err)

	s, err := env.stretches.Begin(ctx, wi.Subtask)
	require.NoError(t, err)
	assert.True(t, s.IsOpen())
	assert.True(t, s.Start.Equal(jan1))

	_, err = env.stretches.Begin(ctx, wi.Subtask)
	require.NoError(t, err)
	assert.Equal(t, 2, env.openCount(t), "Begin does not stop anything")
}

func TestStretch_SwitchKeepsOneOpen(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	first, err := env.stretches.Switch(ctx, "ACME-1-1")
	require.NoError(t, err)
	assert.Zero(t, first.Stopped)
	assert.Equal(t, "ACME-1-1", first.WorkItem.Code())

	env.clock.Advance(45 * time.Minute)
	second, err := env.stretches.Switch(ctx, "ACME-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Stopped)
	assert.Equal(t, "ACME-2-1", second.WorkItem.Code())

	assert.Equal(t, 1, env.openCount(t))

	prev, err := env.stretchRepo.GetByID(ctx, first.Stretch.ID)
	require.NoError(t, err)
	require.NotNil(t, prev.End)
	assert.True(t, prev.End.Equal(second.Stretch.Start), "the stop and the start share one instant")
	assert.Equal(t, 45*time.Minute, prev.Elapsed(env.clock.Now()))
}

func TestStretch_SwitchChronology(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	codes := []string{"ACME-1-1", "ACME-1-2", "OPS-7", "ACME-1-1"}
	var ids []int64
	for _, code := range codes {
		res, err := env.stretches.Switch(ctx, code)
		require.NoError(t, err)
		ids = append(ids, res.Stretch.ID)
		env.clock.Advance(10 * time.Minute)
	}

	for i := 0; i < len(ids)-1; i++ {
		cur, err := env.stretchRepo.GetByID(ctx, ids[i])
		require.NoError(t, err)
		next, err := env.stretchRepo.GetByID(ctx, ids[i+1])
		require.NoError(t, err)
		require.NotNil(t, cur.End)
		assert.False(t, cur.End.After(next.Start), "stretch %d ends after the next one starts", i)
	}
}

func TestStretch_SwitchRejectsBadCode(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	_, err := env.stretches.Switch(ctx, "ACME-1-1")
	require.NoError(t, err)

	_, err = env.stretches.Switch(ctx, "ACME-one")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, env.openCount(t), "a rejected switch stops nothing")
}

func TestStretch_StopAll(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	wi, err := env.hierarchy.ResolveCode(ctx, "ACME-1-1")
	require.NoError(t, err)
	_, err = env.stretches.Begin(ctx, wi.Subtask)
	require.NoError(t, err)
	_, err = env.stretches.Begin(ctx, wi.Subtask)
	require.NoError(t, err)

	env.clock.Advance(time.Hour)
	n, err := env.stretches.StopAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Zero(t, env.openCount(t))

	n, err = env.stretches.StopAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "stopping with nothing open is a no-op")
}

func TestStretch_StopAllAt(t *testing.T) {
	env := newTestEnv(t, "Europe/Berlin", time.Date(2023, 1, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	res, err := env.stretches.Switch(ctx, "ACME-1-1")
	require.NoError(t, err)
	env.clock.Advance(4 * time.Hour)

	n, err := env.stretches.StopAllAt(ctx, "2023-01-01 10:30")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	s, err := env.stretchRepo.GetByID(ctx, res.Stretch.ID)
	require.NoError(t, err)
	require.NotNil(t, s.End)
	assert.True(t, s.End.Equal(time.Date(2023, 1, 1, 9, 30, 0, 0, time.UTC)), "wall time is read in the fixed zone")
}

func TestStretch_StopAllAtBeforeStart(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	_, err := env.stretches.Switch(ctx, "ACME-1-1")
	require.NoError(t, err)

	_, err = env.stretches.StopAllAt(ctx, "2023-01-01 08:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, env.openCount(t))
}

func TestStretch_StopAllAtMalformed(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	_, err := env.stretches.Switch(ctx, "ACME-1-1")
	require.NoError(t, err)

	_, err = env.stretches.StopAllAt(ctx, "half past whenever")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, env.openCount(t), "nothing is updated")
}

func TestStretch_Current(t *testing.T) {
	env := newTestEnv(t, "UTC", jan1)
	ctx := context.Background()

	cur, err := env.stretches.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	_, err = env.hierarchy.SetSubtaskDetails(ctx,
		domain.SubtaskSpec{ProjectCode: "ACME", Task: 4, Subtask: int64Ptr(2)},
		SubtaskDetails{Branch: domain.StrPtr("fix/timeout")})
	require.NoError(t, err)
	_, err = env.stretches.Switch(ctx, "ACME-4-2")
	require.NoError(t, err)

	cur, err = env.stretches.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "ACME-4-2", cur.WorkItem.Code())
	assert.Equal(t, "fix/timeout", domain.StrFromPtr(cur.WorkItem.Subtask.Branch))

	_, err = env.stretches.StopAll(ctx)
	require.NoError(t, err)
	cur, err = env.stretches.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}
