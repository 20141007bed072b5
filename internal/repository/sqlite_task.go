package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (project_id, number, active_subtask) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, t.ProjectID, t.Number, nullableIntToValue(t.ActiveSubtask))
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	t.ID = id
	return nil
}

func (r *SQLiteTaskRepo) Get(ctx context.Context, projectID, number int64) (*domain.Task, error) {
	query := `SELECT id, project_id, number, active_subtask FROM tasks WHERE project_id = ? AND number = ?`
	var t domain.Task
	var active sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, projectID, number).Scan(&t.ID, &t.ProjectID, &t.Number, &active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d of project %d: %w", number, projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.ActiveSubtask = nullableInt(active)
	return &t, nil
}

func (r *SQLiteTaskRepo) GetOrCreate(ctx context.Context, projectID, number int64) (*domain.Task, error) {
	return getOrCreate(ctx,
		func() (*domain.Task, error) { return r.Get(ctx, projectID, number) },
		func() error { return r.Create(ctx, &domain.Task{ProjectID: projectID, Number: number}) },
	)
}

func (r *SQLiteTaskRepo) SetActiveSubtask(ctx context.Context, taskID, number int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET active_subtask = ? WHERE id = ?`, number, taskID)
	if err != nil {
		return fmt.Errorf("setting active subtask: %w", err)
	}
	return nil
}
