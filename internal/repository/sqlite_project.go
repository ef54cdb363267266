package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo. Create and Update write several
// rows; callers wanting atomicity pass a transaction as the DBTX.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(d db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: d}
}

const projectColumns = `id, client_name, client_color, name, description, status, deadline, budget,
	payment_status, urgent, kind, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ClientName,
		p.ClientColor,
		p.Name,
		p.Description,
		string(p.Status),
		p.Deadline,
		p.Budget,
		string(p.PaymentStatus),
		boolToInt(p.Urgent),
		string(p.Kind),
		p.CreatedAt,
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return insertErr("project", p.ID, err)
	}
	return r.insertTasks(ctx, p.ID, p.Tasks)
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	tasks, err := r.loadTasks(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Tasks = tasks[p.ID]
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	rows.Close()

	if len(projects) == 0 {
		return projects, nil
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	tasks, err := r.loadTasks(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		p.Tasks = tasks[p.ID]
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET client_name = ?, client_color = ?, name = ?, description = ?, status = ?,
		deadline = ?, budget = ?, payment_status = ?, urgent = ?, kind = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ClientName,
		p.ClientColor,
		p.Name,
		p.Description,
		string(p.Status),
		p.Deadline,
		p.Budget,
		string(p.PaymentStatus),
		boolToInt(p.Urgent),
		string(p.Kind),
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, domain.ErrNotFound)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	return r.insertTasks(ctx, p.ID, p.Tasks)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) insertTasks(ctx context.Context, projectID string, tasks []domain.Task) error {
	query := `INSERT INTO tasks (id, project_id, seq, title, due_date, completed, color, budget)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, t := range tasks {
		_, err := r.db.ExecContext(ctx, query,
			t.ID, projectID, i, t.Title, t.DueDate, boolToInt(t.Completed), t.Color, t.Budget)
		if err != nil {
			return insertErr("task", t.ID, err)
		}
	}
	return nil
}

// loadTasks fetches the tasks of every listed project in one query, keyed by
// project id and ordered by insertion sequence.
func (r *SQLiteProjectRepo) loadTasks(ctx context.Context, projectIDs []string) (map[string][]domain.Task, error) {
	args := make([]any, len(projectIDs))
	for i, id := range projectIDs {
		args[i] = id
	}
	query := `SELECT project_id, id, title, due_date, completed, color, budget
		FROM tasks WHERE project_id IN (` + placeholders(len(projectIDs)) + `)
		ORDER BY project_id, seq`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Task, len(projectIDs))
	for rows.Next() {
		var projectID string
		var t domain.Task
		var completed int
		if err := rows.Scan(&projectID, &t.ID, &t.Title, &t.DueDate, &completed, &t.Color, &t.Budget); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.Completed = intToBool(completed)
		out[projectID] = append(out[projectID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var status, payment, kind, updatedAt string
	var urgent int

	err := row.Scan(
		&p.ID, &p.ClientName, &p.ClientColor, &p.Name, &p.Description,
		&status, &p.Deadline, &p.Budget, &payment, &urgent, &kind,
		&p.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(status)
	p.PaymentStatus = domain.PaymentStatus(payment)
	p.Kind = domain.ProjectKind(kind)
	p.Urgent = intToBool(urgent)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}
