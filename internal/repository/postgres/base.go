package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

// Table describes an entity table to the generic repository: where rows
// live, which columns are persisted, and which envelope features apply.
type Table struct {
	// Name is the table name.
	Name string
	// Entity names the entity in logs and wrapped errors.
	Entity string
	// Columns is the full persisted column list, including the primary key
	// and the audit envelope.
	Columns []string
	// PrimaryKey defaults to "id".
	PrimaryKey string
	// TenantScoped adds a tenant_id predicate from the context to every query.
	TenantScoped bool
	// SoftDeletes excludes deleted_at-marked rows from list/find-one/count
	// and enables SoftDelete/Restore.
	SoftDeletes bool
}

func (t Table) primaryKey() string {
	if t.PrimaryKey == "" {
		return "id"
	}
	return t.PrimaryKey
}

// countColumn resolves the column used for COUNT aggregates: the primary
// key, or the first declared column when no key is declared.
func (t Table) countColumn() string {
	if t.PrimaryKey != "" {
		return t.PrimaryKey
	}
	if len(t.Columns) > 0 {
		return t.Columns[0]
	}
	return "*"
}

// sortColumn whitelists a requested sort column against the descriptor so
// user-supplied sort terms can never reach the query as raw SQL.
func (t Table) sortColumn(requested string) string {
	if lo.Contains(t.Columns, requested) {
		return requested
	}
	return "created_at"
}

// Repository implements the uniform data-access contract for one entity
// table. Entity repositories embed it and add relation-loading or aggregate
// queries of their own. It borrows the shared database handle per call and
// joins any transaction carried in the context; it never opens one itself.
type Repository[T any] struct {
	db    *postgres.DB
	log   *logger.Logger
	table Table
}

func NewRepository[T any](db *postgres.DB, log *logger.Logger, table Table) *Repository[T] {
	return &Repository[T]{db: db, log: log, table: table}
}

// Table exposes the descriptor to embedding repositories.
func (r *Repository[T]) Table() Table {
	return r.table
}

// execute runs fn against the context querier, logs the outcome, and wraps
// any failure as a DATABASE_ERROR carrying entity, operation and input.
// "Not found" is never an error here; it is handled by the callers as a nil
// result. Log failures are zap's problem and cannot mask the result.
func (r *Repository[T]) execute(ctx context.Context, op string, input any, fn func(q postgres.Querier) error) error {
	q := r.db.GetQuerier(ctx)
	if err := fn(q); err != nil {
		r.log.Errorw("query failed",
			"entity", r.table.Entity,
			"operation", op,
			"input", input,
			"error", err,
		)
		return ierr.WithError(err).
			WithHintf("Failed to %s %s", op, r.table.Entity).
			WithReportableDetails(map[string]any{
				"entity":    r.table.Entity,
				"operation": op,
			}).
			Mark(ierr.ErrDatabase)
	}
	r.log.Debugw("query executed",
		"entity", r.table.Entity,
		"operation", op,
		"input", input,
	)
	return nil
}

// predicates builds the WHERE conjunction for read queries: tenant scope,
// soft-delete exclusion, then the sparse equality map in column order.
func (r *Repository[T]) predicates(ctx context.Context, f types.Filter, includeDeleted bool) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if r.table.TenantScoped {
		if tenantID := types.GetTenantID(ctx); tenantID != "" {
			preds = append(preds, entsql.EQ("tenant_id", tenantID))
		}
	}
	if r.table.SoftDeletes && !includeDeleted {
		preds = append(preds, entsql.IsNull("deleted_at"))
	}
	for _, k := range f.Keys() {
		preds = append(preds, entsql.EQ(k, f.Eq[k]))
	}
	return preds
}

func (r *Repository[T]) selector(ctx context.Context, f types.Filter, includeDeleted bool) *entsql.Selector {
	sel := entsql.Dialect(dialect.Postgres).
		Select(r.table.Columns...).
		From(entsql.Table(r.table.Name))
	if preds := r.predicates(ctx, f, includeDeleted); len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	return sel
}

// List returns all rows matching the filter. An empty filter matches all
// non-deleted rows in the tenant.
func (r *Repository[T]) List(ctx context.Context, f types.Filter) ([]*T, error) {
	var items []*T
	err := r.execute(ctx, "list", f.Eq, func(q postgres.Querier) error {
		query, args := r.selector(ctx, f, f.IncludeDeleted).Query()
		return q.SelectContext(ctx, &items, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListPage returns one page of matching rows plus the full matching count.
// The page and count queries are independent and run concurrently, purely
// for latency; inside a transaction they run sequentially because the
// underlying tx connection is not safe for concurrent statements.
func (r *Repository[T]) ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*T], error) {
	var (
		items []*T
		total int
	)

	fetchItems := func(ctx context.Context) error {
		return r.execute(ctx, "list", f.Eq, func(q postgres.Querier) error {
			sel := r.selector(ctx, f, f.IncludeDeleted)
			sort := r.table.sortColumn(p.GetSort())
			if p.GetOrder() == "asc" {
				sel.OrderBy(entsql.Asc(sort), entsql.Asc(r.table.primaryKey()))
			} else {
				sel.OrderBy(entsql.Desc(sort), entsql.Asc(r.table.primaryKey()))
			}
			query, args := sel.Limit(p.Limit()).Offset(p.Offset()).Query()
			return q.SelectContext(ctx, &items, query, args...)
		})
	}
	fetchTotal := func(ctx context.Context) error {
		n, err := r.Count(ctx, f)
		if err != nil {
			return err
		}
		total = n
		return nil
	}

	if _, inTx := postgres.GetTx(ctx); inTx {
		if err := fetchItems(ctx); err != nil {
			return nil, err
		}
		if err := fetchTotal(ctx); err != nil {
			return nil, err
		}
	} else {
		wp := pool.New().WithErrors().WithContext(ctx)
		wp.Go(fetchItems)
		wp.Go(fetchTotal)
		if err := wp.Wait(); err != nil {
			return nil, err
		}
	}

	if items == nil {
		items = []*T{}
	}
	return &types.ListResult[*T]{Items: items, Total: total}, nil
}

// FindOne returns the first row matching the filter, or nil when none does.
func (r *Repository[T]) FindOne(ctx context.Context, f types.Filter) (*T, error) {
	var (
		item  T
		found bool
	)
	err := r.execute(ctx, "find_one", f.Eq, func(q postgres.Querier) error {
		query, args := r.selector(ctx, f, f.IncludeDeleted).Limit(1).Query()
		if err := q.GetContext(ctx, &item, query, args...); err != nil {
			if err == sql.ErrNoRows {
				return nil
			}
			return err
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

// GetByID returns the row with the given primary key, or nil when absent.
// Soft-deleted rows are included: direct-by-id fetches see the full row so
// restore and audit flows can inspect deleted entities.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	f := types.Filter{Eq: map[string]any{r.table.primaryKey(): id}, IncludeDeleted: true}
	return r.FindOne(ctx, f)
}

// Count returns the number of rows matching the filter, 0 when the
// aggregate comes back absent.
func (r *Repository[T]) Count(ctx context.Context, f types.Filter) (int, error) {
	var total sql.NullInt64
	err := r.execute(ctx, "count", f.Eq, func(q postgres.Querier) error {
		sel := entsql.Dialect(dialect.Postgres).
			Select(entsql.Count(r.table.countColumn())).
			From(entsql.Table(r.table.Name))
		if preds := r.predicates(ctx, f, f.IncludeDeleted); len(preds) > 0 {
			sel.Where(entsql.And(preds...))
		}
		query, args := sel.Query()
		return q.GetContext(ctx, &total, query, args...)
	})
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return int(total.Int64), nil
}

// Create inserts one row and returns the stored version. The caller stamps
// the audit envelope (id, tenant, created/updated marks) before calling.
func (r *Repository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	cols := r.table.Columns
	insert := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (:%s) RETURNING %s",
		r.table.Name,
		strings.Join(cols, ", "),
		strings.Join(cols, ", :"),
		strings.Join(cols, ", "),
	)

	var (
		created T
		found   bool
	)
	err := r.execute(ctx, "create", nil, func(q postgres.Querier) error {
		query, args, err := sqlx.Named(insert, entity)
		if err != nil {
			return err
		}
		rows, err := q.QueryxContext(ctx, q.Rebind(query), args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		if rows.Next() {
			if err := rows.StructScan(&created); err != nil {
				return err
			}
			found = true
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ierr.NewError("insert returned no row").
			WithHintf("Failed to create %s", r.table.Entity).
			WithReportableDetails(map[string]any{"entity": r.table.Entity}).
			Mark(ierr.ErrDatabase)
	}
	return &created, nil
}

// whereSQL renders the filter as positional WHERE clauses for mutating
// statements, continuing placeholder numbering after the SET arguments.
func (r *Repository[T]) whereSQL(ctx context.Context, f types.Filter, includeDeleted bool, args *[]any) string {
	var clauses []string
	if r.table.TenantScoped {
		if tenantID := types.GetTenantID(ctx); tenantID != "" {
			*args = append(*args, tenantID)
			clauses = append(clauses, fmt.Sprintf("tenant_id = $%d", len(*args)))
		}
	}
	if r.table.SoftDeletes && !includeDeleted {
		clauses = append(clauses, "deleted_at IS NULL")
	}
	for _, k := range f.Keys() {
		*args = append(*args, f.Eq[k])
		clauses = append(clauses, fmt.Sprintf("%s = $%d", k, len(*args)))
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

// Update applies the change set to all rows matching the filter, stamping
// the updater marks, and returns the first updated row or nil when none
// matched.
func (r *Repository[T]) Update(ctx context.Context, f types.Filter, changes map[string]any) (*T, error) {
	set := map[string]any{}
	for k, v := range changes {
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()
	if userID := types.GetUserID(ctx); userID != "" {
		set["updated_by"] = userID
	}

	var (
		args    []any
		setSQL  []string
		updated []*T
	)
	for _, k := range sortedKeys(set) {
		args = append(args, set[k])
		setSQL = append(setSQL, fmt.Sprintf("%s = $%d", k, len(args)))
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s RETURNING %s",
		r.table.Name,
		strings.Join(setSQL, ", "),
		r.whereSQL(ctx, f, f.IncludeDeleted, &args),
		strings.Join(r.table.Columns, ", "),
	)

	err := r.execute(ctx, "update", f.Eq, func(q postgres.Querier) error {
		return q.SelectContext(ctx, &updated, query, args...)
	})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, nil
	}
	return updated[0], nil
}

// SoftDelete stamps the deletion marks on matching rows and returns the
// number of rows affected. Already-deleted rows never match.
func (r *Repository[T]) SoftDelete(ctx context.Context, f types.Filter) (int, error) {
	if !r.table.SoftDeletes {
		return 0, ierr.NewError("soft delete not supported").
			WithHintf("%s does not support soft deletion", r.table.Entity).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	args := []any{now, now}
	setSQL := "deleted_at = $1, updated_at = $2"
	if userID := types.GetUserID(ctx); userID != "" {
		args = append(args, userID, userID)
		setSQL += fmt.Sprintf(", deleted_by = $%d, updated_by = $%d", len(args)-1, len(args))
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s",
		r.table.Name, setSQL, r.whereSQL(ctx, f, false, &args))
	return r.exec(ctx, "soft_delete", f.Eq, query, args)
}

// Restore clears the deletion marks on matching soft-deleted rows and
// returns the number of rows affected.
func (r *Repository[T]) Restore(ctx context.Context, f types.Filter) (int, error) {
	if !r.table.SoftDeletes {
		return 0, ierr.NewError("restore not supported").
			WithHintf("%s does not support soft deletion", r.table.Entity).
			Mark(ierr.ErrInvalidOperation)
	}

	args := []any{time.Now().UTC()}
	setSQL := "deleted_at = NULL, deleted_by = NULL, updated_at = $1"
	if userID := types.GetUserID(ctx); userID != "" {
		args = append(args, userID)
		setSQL += fmt.Sprintf(", updated_by = $%d", len(args))
	}

	where := r.whereSQL(ctx, f, true, &args)
	if where == "" {
		where = " WHERE deleted_at IS NOT NULL"
	} else {
		where += " AND deleted_at IS NOT NULL"
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", r.table.Name, setSQL, where)
	return r.exec(ctx, "restore", f.Eq, query, args)
}

// HardDelete physically removes matching rows, soft-deleted or not, and
// returns the number of rows removed.
func (r *Repository[T]) HardDelete(ctx context.Context, f types.Filter) (int, error) {
	var args []any
	query := fmt.Sprintf("DELETE FROM %s%s",
		r.table.Name, r.whereSQL(ctx, f, true, &args))
	return r.exec(ctx, "hard_delete", f.Eq, query, args)
}

// GetWithRelations is relation loading for entities that declare relations.
// The base repository has none; entity repositories that support hydration
// shadow this method.
func (r *Repository[T]) GetWithRelations(ctx context.Context, id string, relations []string) (*T, error) {
	return nil, ierr.NewError("relation loading not implemented").
		WithHintf("%s does not implement relation loading", r.table.Entity).
		WithReportableDetails(map[string]any{
			"entity":    r.table.Entity,
			"relations": relations,
		}).
		Mark(ierr.ErrInvalidOperation)
}

// exec runs a mutating statement and returns the affected row count.
func (r *Repository[T]) exec(ctx context.Context, op string, input any, query string, args []any) (int, error) {
	var affected int64
	err := r.execute(ctx, op, input, func(q postgres.Querier) error {
		res, err := q.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// iteration order of maps is random; deterministic SQL makes logs and
	// tests stable
	sort.Strings(keys)
	return keys
}
