package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowSchema describes how one section table maps to its entity type. The
// four section tables share every query shape, so the queries live once in
// childRepo and only the schema varies.
type rowSchema[T section.Entity] struct {
	table        string
	columns      []string
	scan         func(row pgx.Row) (T, error)
	insertValues func(e T) []any
	updateMap    func(e T) map[string]any
	identity     func(e T) (id, profileID uuid.UUID)
}

type childRepo[T section.Entity] struct {
	db     *pgxpool.Pool
	schema rowSchema[T]
	logger logger.Logger
}

func newChildRepo[T section.Entity](db *pgxpool.Pool, schema rowSchema[T], log logger.Logger) section.Repository[T] {
	return &childRepo[T]{db: db, schema: schema, logger: log}
}

func (r *childRepo[T]) Insert(ctx context.Context, e T) error {
	query, args, err := psql.Insert(r.schema.table).
		Columns(r.schema.columns...).
		Values(r.schema.insertValues(e)...).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert query", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to insert "+e.Kind(), err)
	}
	return nil
}

func (r *childRepo[T]) Update(ctx context.Context, e T) error {
	id, profileID := r.schema.identity(e)

	query, args, err := psql.Update(r.schema.table).
		SetMap(r.schema.updateMap(e)).
		Where(sq.Eq{"id": id, "profile_id": profileID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update query", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewInternal("failed to update "+e.Kind(), err)
	}
	if cmdTag.RowsAffected() == 0 {
		// No row matched (id, profile_id). Deliberately the same error as a
		// missing identity so ownership of other users' rows never leaks.
		return apperror.NewNotAuthenticated(e.Kind() + " update matched no row")
	}
	return nil
}

func (r *childRepo[T]) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	query, args, err := psql.Delete(r.schema.table).
		Where(sq.Eq{"id": id, "profile_id": profileID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build delete query", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewInternal("failed to delete from "+r.schema.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotAuthenticated("delete matched no row in " + r.schema.table)
	}
	return nil
}

func (r *childRepo[T]) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]T, error) {
	query, args, err := psql.Select(r.schema.columns...).
		From(r.schema.table).
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query "+r.schema.table, err)
	}
	defer rows.Close()

	entities := make([]T, 0)
	for rows.Next() {
		e, err := r.schema.scan(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating "+r.schema.table+" rows", err)
	}
	return entities, nil
}

func (r *childRepo[T]) CountByProfile(ctx context.Context, profileID uuid.UUID) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(r.schema.table).
		Where(sq.Eq{"profile_id": profileID}).
		ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build count query", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperror.NewInternal("failed to count "+r.schema.table, err)
	}
	return count, nil
}

func (r *childRepo[T]) NextSortOrder(ctx context.Context, profileID uuid.UUID) (int, error) {
	query, args, err := psql.Select("COALESCE(MAX(sort_order) + 1, 0)").
		From(r.schema.table).
		Where(sq.Eq{"profile_id": profileID}).
		ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build sort order query", err)
	}

	var next int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&next); err != nil {
		return 0, apperror.NewInternal("failed to compute next sort_order for "+r.schema.table, err)
	}
	return next, nil
}
