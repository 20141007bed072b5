package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
)

// SQLiteSubtaskRepo implements SubtaskRepo using a SQLite database.
type SQLiteSubtaskRepo struct {
	db db.DBTX
}

func NewSQLiteSubtaskRepo(conn db.DBTX) *SQLiteSubtaskRepo {
	return &SQLiteSubtaskRepo{db: conn}
}

func (r *SQLiteSubtaskRepo) Create(ctx context.Context, s *domain.Subtask) error {
	query := `INSERT INTO subtasks (task_id, number, branch, description, active) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.TaskID,
		s.Number,
		nullableStringToValue(s.Branch),
		nullableStringToValue(s.Description),
		boolToInt(s.Active),
	)
	if err != nil {
		return fmt.Errorf("inserting subtask: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading subtask id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSubtaskRepo) Get(ctx context.Context, taskID, number int64) (*domain.Subtask, error) {
	query := `SELECT id, task_id, number, branch, description, active FROM subtasks WHERE task_id = ? AND number = ?`
	var s domain.Subtask
	var branch, description sql.NullString
	var active int
	err := r.db.QueryRowContext(ctx, query, taskID, number).Scan(&s.ID, &s.TaskID, &s.Number, &branch, &description, &active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subtask %d of task %d: %w", number, taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subtask: %w", err)
	}
	s.Branch = nullableString(branch)
	s.Description = nullableString(description)
	s.Active = intToBool(active)
	return &s, nil
}

// GetOrCreate returns subtask number of the task, creating it active.
func (r *SQLiteSubtaskRepo) GetOrCreate(ctx context.Context, taskID, number int64) (*domain.Subtask, error) {
	return getOrCreate(ctx,
		func() (*domain.Subtask, error) { return r.Get(ctx, taskID, number) },
		func() error {
			return r.Create(ctx, &domain.Subtask{TaskID: taskID, Number: number, Active: true})
		},
	)
}

func (r *SQLiteSubtaskRepo) MaxNumber(ctx context.Context, taskID int64) (int64, error) {
	var latest sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT MAX(number) FROM subtasks WHERE task_id = ?`, taskID).Scan(&latest)
	if err != nil {
		return 0, fmt.Errorf("finding latest subtask: %w", err)
	}
	if !latest.Valid {
		return 0, fmt.Errorf("subtasks of task %d: %w", taskID, ErrNotFound)
	}
	return latest.Int64, nil
}

func (r *SQLiteSubtaskRepo) Update(ctx context.Context, s *domain.Subtask) error {
	query := `UPDATE subtasks SET branch = ?, description = ?, active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStringToValue(s.Branch),
		nullableStringToValue(s.Description),
		boolToInt(s.Active),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating subtask: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("subtask %d: %w", s.ID, ErrNotFound)
	}
	return nil
}

// GetWorkItem loads the subtask together with its task and project.
func (r *SQLiteSubtaskRepo) GetWorkItem(ctx context.Context, subtaskID int64) (*domain.WorkItem, error) {
	query := `SELECT
			p.id, p.code, p.directory, p.name,
			t.id, t.project_id, t.number, t.active_subtask,
			s.id, s.task_id, s.number, s.branch, s.description, s.active
		FROM subtasks s
		JOIN tasks t ON s.task_id = t.id
		JOIN projects p ON t.project_id = p.id
		WHERE s.id = ?`

	var p domain.Project
	var t domain.Task
	var s domain.Subtask
	var pDir, pName, sBranch, sDesc sql.NullString
	var tActive sql.NullInt64
	var sActive int

	err := r.db.QueryRowContext(ctx, query, subtaskID).Scan(
		&p.ID, &p.Code, &pDir, &pName,
		&t.ID, &t.ProjectID, &t.Number, &tActive,
		&s.ID, &s.TaskID, &s.Number, &sBranch, &sDesc, &sActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work item for subtask %d: %w", subtaskID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work item: %w", err)
	}

	p.Directory = nullableString(pDir)
	p.Name = nullableString(pName)
	t.ActiveSubtask = nullableInt(tActive)
	s.Branch = nullableString(sBranch)
	s.Description = nullableString(sDesc)
	s.Active = intToBool(sActive)

	return &domain.WorkItem{Project: &p, Task: &t, Subtask: &s}, nil
}
