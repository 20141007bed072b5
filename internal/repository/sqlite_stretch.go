package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/domain"
)

// SQLiteStretchRepo implements StretchRepo using a SQLite database.
// Instants are stored as epoch seconds.
type SQLiteStretchRepo struct {
	db db.DBTX
}

func NewSQLiteStretchRepo(conn db.DBTX) *SQLiteStretchRepo {
	return &SQLiteStretchRepo{db: conn}
}

const stretchColumns = `id, subtask_id, start, "end"`

func (r *SQLiteStretchRepo) Create(ctx context.Context, s *domain.Stretch) error {
	query := `INSERT INTO stretches (subtask_id, start, "end") VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, s.SubtaskID, toEpoch(s.Start), nullableTimeToEpoch(s.End))
	if err != nil {
		return fmt.Errorf("inserting stretch: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading stretch id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteStretchRepo) GetByID(ctx context.Context, id int64) (*domain.Stretch, error) {
	query := `SELECT ` + stretchColumns + ` FROM stretches WHERE id = ?`
	s, err := scanStretch(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("stretch %d: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStretchRepo) ListOpen(ctx context.Context) ([]*domain.Stretch, error) {
	query := `SELECT ` + stretchColumns + ` FROM stretches WHERE "end" IS NULL ORDER BY start, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing open stretches: %w", err)
	}
	defer rows.Close()

	var stretches []*domain.Stretch
	for rows.Next() {
		s, err := scanStretch(rows)
		if err != nil {
			return nil, err
		}
		stretches = append(stretches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating open stretches: %w", err)
	}
	return stretches, nil
}

func (r *SQLiteStretchRepo) Current(ctx context.Context) (*domain.Stretch, error) {
	query := `SELECT ` + stretchColumns + ` FROM stretches
		WHERE "end" IS NULL
		ORDER BY start DESC, id DESC
		LIMIT 1`
	s, err := scanStretch(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("current stretch: %w", ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStretchRepo) CloseOpen(ctx context.Context, end time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE stretches SET "end" = ? WHERE "end" IS NULL`, toEpoch(end))
	if err != nil {
		return 0, fmt.Errorf("closing open stretches: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting closed stretches: %w", err)
	}
	return n, nil
}

func (r *SQLiteStretchRepo) ListOverlapping(ctx context.Context, from, until time.Time) ([]domain.CodedStretch, error) {
	// Open stretches have a NULL end, which makes the predicate NULL and
	// drops them.
	query := `SELECT s.id, s.subtask_id, s.start, s."end", p.code, t.number, st.number
		FROM stretches s
		JOIN subtasks st ON s.subtask_id = st.id
		JOIN tasks t ON st.task_id = t.id
		JOIN projects p ON t.project_id = p.id
		WHERE NOT (s.start > ? OR s."end" < ?)
		ORDER BY s.start, s.id`
	rows, err := r.db.QueryContext(ctx, query, toEpoch(until), toEpoch(from))
	if err != nil {
		return nil, fmt.Errorf("listing overlapping stretches: %w", err)
	}
	defer rows.Close()

	var out []domain.CodedStretch
	for rows.Next() {
		var cs domain.CodedStretch
		var start int64
		var end sql.NullInt64
		var code string
		var taskNum, subNum int64
		if err := rows.Scan(&cs.Stretch.ID, &cs.Stretch.SubtaskID, &start, &end, &code, &taskNum, &subNum); err != nil {
			return nil, fmt.Errorf("scanning stretch row: %w", err)
		}
		cs.Stretch.Start = fromEpoch(start)
		cs.Stretch.End = nullableEpoch(end)
		cs.Code = domain.FormatCode(code, taskNum, subNum)
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overlapping stretches: %w", err)
	}
	return out, nil
}

// scanStretch returns sql.ErrNoRows unwrapped so callers can attach context.
func scanStretch(row rowScanner) (*domain.Stretch, error) {
	var s domain.Stretch
	var start int64
	var end sql.NullInt64
	if err := row.Scan(&s.ID, &s.SubtaskID, &start, &end); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning stretch: %w", err)
	}
	s.Start = fromEpoch(start)
	s.End = nullableEpoch(end)
	return &s, nil
}
