package shared

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/adventureworks/purchasing/internal/platform/db"
	"github.com/adventureworks/purchasing/internal/platform/httpx"
)

// RowScanner abstracts pgx.Row and pgx.Rows for mapping functions.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapping binds an entity type to its table: the identity column is
// always "id", everything else is declared explicitly so there is no
// reflection or implicit relationship graph involved.
type Mapping[T any] struct {
	Table   string
	Entity  string
	Columns []string
	Scan    func(row RowScanner) (T, error)
	Values  func(e T) []any
}

// CRUD implements the five single-row operations shared by vendors,
// ship methods, and persons. Composition replaces the base-class
// inheritance the entities would otherwise duplicate.
type CRUD[T any] struct {
	q db.Querier
	m Mapping[T]

	selectSQL string
	insertSQL string
	updateSQL string
	deleteSQL string
}

// NewCRUD prepares statements for the mapping up front.
func NewCRUD[T any](q db.Querier, m Mapping[T]) *CRUD[T] {
	cols := "id, " + strings.Join(m.Columns, ", ")

	placeholders := make([]string, len(m.Columns))
	assignments := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		assignments[i] = col + " = $" + strconv.Itoa(i+1)
	}

	return &CRUD[T]{
		q:         q,
		m:         m,
		selectSQL: "SELECT " + cols + " FROM " + m.Table,
		insertSQL: "INSERT INTO " + m.Table + " (" + strings.Join(m.Columns, ", ") + ") VALUES (" +
			strings.Join(placeholders, ", ") + ") RETURNING id",
		updateSQL: "UPDATE " + m.Table + " SET " + strings.Join(assignments, ", ") +
			" WHERE id = $" + strconv.Itoa(len(m.Columns)+1),
		deleteSQL: "DELETE FROM " + m.Table + " WHERE id = $1",
	}
}

// List returns every row ordered by identity.
func (c *CRUD[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.q.Query(ctx, c.selectSQL+" ORDER BY id")
	if err != nil {
		return nil, WrapStorage("list", c.m.Entity, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := c.m.Scan(rows)
		if err != nil {
			return nil, WrapStorage("list", c.m.Entity, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapStorage("list", c.m.Entity, err)
	}
	return items, nil
}

// Get returns a single row or httpx.ErrNotFound.
func (c *CRUD[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	item, err := c.m.Scan(c.q.QueryRow(ctx, c.selectSQL+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("%s %d: %w", c.m.Entity, id, httpx.ErrNotFound)
		}
		return zero, WrapStorage("get", c.m.Entity, err)
	}
	return item, nil
}

// Create inserts a row, letting storage assign the identity.
func (c *CRUD[T]) Create(ctx context.Context, e T) (int64, error) {
	var id int64
	if err := c.q.QueryRow(ctx, c.insertSQL, c.m.Values(e)...).Scan(&id); err != nil {
		return 0, WrapStorage("create", c.m.Entity, err)
	}
	return id, nil
}

// Update rewrites every mapped column of the row matching by identity.
func (c *CRUD[T]) Update(ctx context.Context, id int64, e T) error {
	args := append(c.m.Values(e), id)
	tag, err := c.q.Exec(ctx, c.updateSQL, args...)
	if err != nil {
		return WrapStorage("update", c.m.Entity, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", c.m.Entity, id, httpx.ErrNotFound)
	}
	return nil
}

// Delete removes a row and reports how many rows went away; deleting a
// missing identity is a no-op.
func (c *CRUD[T]) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := c.q.Exec(ctx, c.deleteSQL, id)
	if err != nil {
		return 0, WrapStorage("delete", c.m.Entity, err)
	}
	return tag.RowsAffected(), nil
}
