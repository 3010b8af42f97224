package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// base provides the entity-agnostic persistence primitives shared by
// all repositories. It is parameterized over the entity type; each
// instantiation binds one table, its select column list, and a row-scan
// function.
//
// Entity-specific writes (INSERT/UPDATE column sets differ per table)
// stay on the concrete repositories.
type base[T any] struct {
	db      Queryer
	table   string
	columns string
	scan    func(row pgx.Row) (*T, error)
}

// getByID is a point lookup by primary key. A missing row yields
// (nil, nil), never an error.
func (b *base[T]) getByID(ctx context.Context, id int64) (*T, error) {
	row := b.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, b.columns, b.table), id)

	entity, err := b.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entity, nil
}

// getAll returns entities ordered by id with offset/limit pagination.
func (b *base[T]) getAll(ctx context.Context, skip, limit int) ([]T, error) {
	rows, err := b.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s ORDER BY id LIMIT $1 OFFSET $2`, b.columns, b.table),
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return b.collect(rows)
}

// deleteByID removes a row by primary key, reporting whether a row was
// actually deleted.
func (b *base[T]) deleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := b.db.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, b.table), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// collect drains rows through the bound scan function. The slice is
// always non-nil so empty results serialize as [], not null.
func (b *base[T]) collect(rows pgx.Rows) ([]T, error) {
	entities := []T{}
	for rows.Next() {
		entity, err := b.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", b.table, err)
		}
		entities = append(entities, *entity)
	}
	return entities, rows.Err()
}
