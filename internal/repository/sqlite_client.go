package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/domain"
)

type SQLiteClientRepo struct {
	db db.DBTX
}

func NewSQLiteClientRepo(d db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: d}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, color, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Color, formatTime(c.CreatedAt))
	if err != nil {
		return insertErr("client", c.ID, err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, color, created_at FROM clients WHERE id = ?`, id)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return c, err
}

func (r *SQLiteClientRepo) FindByName(ctx context.Context, name string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at FROM clients WHERE name = ? COLLATE NOCASE ORDER BY created_at, rowid LIMIT 1`, name)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %q: %w", name, domain.ErrNotFound)
	}
	return c, err
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color, created_at FROM clients ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}

// Delete removes only the client row; projects keep their copied name and colour.
func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var createdAt string
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}
