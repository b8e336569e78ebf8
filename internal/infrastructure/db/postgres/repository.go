package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

// Querier is the subset of pgxpool.Pool the repositories need. Narrowing it
// keeps the pool an explicit, substitutable dependency.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Descriptor declares how one entity maps onto its table: the table and
// identifier column, the owner-reference column, and the full field-to-column
// map. Statements are assembled only from these declared names, so caller
// input can never reach the SQL text; values always travel as parameters.
type Descriptor struct {
	Table       string
	IDColumn    string
	OwnerColumn string
	// Fields maps case-folded application field names to column names.
	// The identifier column must not appear here; it is store-assigned.
	Fields map[string]string
}

// Repository implements generic CRUD for one described entity. T must carry
// db struct tags matching the descriptor's columns.
type Repository[T any] struct {
	db   Querier
	desc Descriptor
}

func NewRepository[T any](db Querier, desc Descriptor) *Repository[T] {
	return &Repository[T]{db: db, desc: desc}
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT * FROM %s`, r.desc.Table))
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", r.desc.Table, err)
	}
	return collect[T](rows, r.desc.Table)
}

func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, r.desc.Table, r.desc.IDColumn)
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("select %s by id: %w", r.desc.Table, err)
	}
	return collectOne[T](rows, r.desc.Table)
}

func (r *Repository[T]) FindByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, r.desc.Table, r.desc.OwnerColumn)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select %s by owner: %w", r.desc.Table, err)
	}
	return collect[T](rows, r.desc.Table)
}

// Create inserts every field present on the patch and returns the row as
// persisted, including the store-assigned identifier.
func (r *Repository[T]) Create(ctx context.Context, patch *ports.Patch) (*T, error) {
	query, args, err := buildInsert(r.desc, patch)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError("insert "+r.desc.Table, err)
	}
	created, err := collectOne[T](rows, r.desc.Table)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("insert %s: no row returned", r.desc.Table)
	}
	return created, nil
}

// Update mutates only the fields present on the patch. An empty patch
// short-circuits to a plain lookup so callers need not special-case it.
func (r *Repository[T]) Update(ctx context.Context, id int64, patch *ports.Patch) (*T, error) {
	query, args, err := buildUpdate(r.desc, id, patch)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return r.FindByID(ctx, id)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError("update "+r.desc.Table, err)
	}
	return collectOne[T](rows, r.desc.Table)
}

// Delete removes the row and reports whether anything was actually removed.
func (r *Repository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.desc.Table, r.desc.IDColumn)
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.desc.Table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// buildInsert renders "INSERT INTO t (c1, c2) VALUES ($1, $2) RETURNING *"
// from the declared columns of the patch. Unknown fields are rejected; the
// identifier column is dropped even if present on the input.
func buildInsert(desc Descriptor, patch *ports.Patch) (string, []any, error) {
	cols, args, err := resolveFields(desc, patch)
	if err != nil {
		return "", nil, err
	}
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("insert %s: no insertable fields", desc.Table)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		desc.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return query, args, nil
}

// buildUpdate renders "UPDATE t SET c1 = $2 WHERE id = $1 RETURNING *".
// A patch with zero updatable fields yields an empty query, signalling the
// caller to fall back to a lookup.
func buildUpdate(desc Descriptor, id int64, patch *ports.Patch) (string, []any, error) {
	cols, vals, err := resolveFields(desc, patch)
	if err != nil {
		return "", nil, err
	}
	if len(cols) == 0 {
		return "", nil, nil
	}

	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING *`,
		desc.Table, strings.Join(sets, ", "), desc.IDColumn)
	args := append([]any{id}, vals...)
	return query, args, nil
}

// resolveFields maps patch field names to declared columns. Matching is
// case-insensitive; the identifier column is silently stripped because it is
// store-assigned and immutable, and any undeclared field is rejected. When a
// field is set twice the later value wins, each column appearing once in the
// statement.
func resolveFields(desc Descriptor, patch *ports.Patch) ([]string, []any, error) {
	var cols []string
	var args []any
	seen := make(map[string]int)
	for _, f := range patch.Fields() {
		name := strings.ToLower(f.Name)
		if name == desc.IDColumn {
			continue
		}
		col, ok := desc.Fields[name]
		if !ok {
			return nil, nil, fmt.Errorf("%s: unknown field %q", desc.Table, f.Name)
		}
		if i, dup := seen[col]; dup {
			args[i] = f.Value
			continue
		}
		seen[col] = len(cols)
		cols = append(cols, col)
		args = append(args, f.Value)
	}
	return cols, args, nil
}

func collect[T any](rows pgx.Rows, table string) ([]T, error) {
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func collectOne[T any](rows pgx.Rows, table string) (*T, error) {
	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	return item, nil
}

// mapPgError classifies constraint violations so the service layer can
// surface them as conflicts instead of opaque server errors.
func mapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503": // unique_violation, foreign_key_violation
			return fmt.Errorf("%s: %w", op, domain.ErrConflict)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
