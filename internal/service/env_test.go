package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/alexanderramin/logtime/internal/repository"
	"github.com/alexanderramin/logtime/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service onto one in-memory database and a clock the
// test controls.
type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	clock     *testutil.FixedClock
	zone      *clock.Zone
	hierarchy HierarchyService
	stretches StretchService
	reports   ReportService
	projects  ProjectService

	stretchRepo *repository.SQLiteStretchRepo
}

func newTestEnv(t *testing.T, zoneName string, now time.Time, observers ...UseCaseObserver) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	zone, err := clock.LoadZone(zoneName)
	require.NoError(t, err)

	env := &testEnv{
		db:          database,
		uow:         testutil.NewTestUoW(database),
		clock:       testutil.NewFixedClock(now),
		zone:        zone,
		stretchRepo: repository.NewSQLiteStretchRepo(database),
	}
	subtasks := repository.NewSQLiteSubtaskRepo(database)
	env.hierarchy = NewHierarchyService(env.uow, observers...)
	env.stretches = NewStretchService(env.stretchRepo, subtasks, env.uow, env.clock, zone, observers...)
	env.reports = NewReportService(env.stretchRepo, env.clock, zone, observers...)
	env.projects = NewProjectService(repository.NewSQLiteProjectRepo(database), env.uow, observers...)
	return env
}

// local returns the instant of a wall-clock time in the env's zone.
func (e *testEnv) local(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, e.zone.Location())
}

// logStretch records a closed stretch on code between two instants.
func (e *testEnv) logStretch(t *testing.T, code string, start, end time.Time) *domain.Stretch {
	t.Helper()
	wi, err := e.hierarchy.ResolveCode(context.Background(), code)
	require.NoError(t, err)
	s := testutil.NewTestStretch(wi.Subtask.ID, start, testutil.WithEnd(end))
	require.NoError(t, e.stretchRepo.Create(context.Background(), s))
	return s
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func (e *testEnv) openCount(t *testing.T) int {
	t.Helper()
	open, err := e.stretchRepo.ListOpen(context.Background())
	require.NoError(t, err)
	return len(open)
}

var jan1 = time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC)
