package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/types"
)

type fixtureRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`

	types.BaseModel
}

var fixtureTable = Table{
	Name:         "fixtures",
	Entity:       "fixture",
	Columns:      withBaseColumns("id", "name"),
	TenantScoped: true,
	SoftDeletes:  true,
}

func testContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxTenantID, "tenant_test")
	ctx = context.WithValue(ctx, types.CtxUserID, "user_test")
	return ctx
}

func newFixtureRepository() *Repository[fixtureRow] {
	return NewRepository[fixtureRow](nil, logger.NewNop(), fixtureTable)
}

func TestTablePrimaryKeyDefault(t *testing.T) {
	assert.Equal(t, "id", Table{}.primaryKey())
	assert.Equal(t, "code", Table{PrimaryKey: "code"}.primaryKey())
}

func TestTableCountColumn(t *testing.T) {
	assert.Equal(t, "code", Table{PrimaryKey: "code"}.countColumn())
	assert.Equal(t, "id", Table{Columns: []string{"id", "name"}}.countColumn())
	assert.Equal(t, "*", Table{}.countColumn())
}

func TestTableSortColumnWhitelist(t *testing.T) {
	table := Table{Columns: []string{"id", "name", "created_at"}}

	assert.Equal(t, "name", table.sortColumn("name"))
	assert.Equal(t, "created_at", table.sortColumn("created_at"))

	// Unknown columns fall back instead of reaching the query.
	assert.Equal(t, "created_at", table.sortColumn("name; DROP TABLE fixtures"))
	assert.Equal(t, "created_at", table.sortColumn(""))
}

func TestSelectorScopesTenantAndSoftDelete(t *testing.T) {
	r := newFixtureRepository()
	ctx := testContext()

	query, args := r.selector(ctx, types.NewFilter(map[string]any{"name": "villa"}), false).Query()

	assert.Contains(t, query, `FROM "fixtures"`)
	assert.Contains(t, query, `"tenant_id" = $1`)
	assert.Contains(t, query, `"deleted_at" IS NULL`)
	assert.Contains(t, query, `"name" = $2`)
	assert.Equal(t, []any{"tenant_test", "villa"}, args)
}

func TestSelectorIncludeDeletedDropsExclusion(t *testing.T) {
	r := newFixtureRepository()
	ctx := testContext()

	query, _ := r.selector(ctx, types.Filter{}, true).Query()

	assert.NotContains(t, query, "deleted_at")
	assert.Contains(t, query, `"tenant_id" = $1`)
}

func TestSelectorWithoutTenantInContext(t *testing.T) {
	r := newFixtureRepository()

	query, args := r.selector(context.Background(), types.Filter{}, false).Query()

	assert.NotContains(t, query, "tenant_id")
	assert.Contains(t, query, `"deleted_at" IS NULL`)
	assert.Empty(t, args)
}

func TestSelectorUnscopedTable(t *testing.T) {
	r := NewRepository[fixtureRow](nil, logger.NewNop(), Table{
		Name:    "plain",
		Entity:  "plain",
		Columns: []string{"id", "name"},
	})

	query, args := r.selector(testContext(), types.Filter{}, false).Query()

	assert.NotContains(t, query, "tenant_id")
	assert.NotContains(t, query, "deleted_at")
	assert.Empty(t, args)
}

func TestWhereSQLPlaceholderNumbering(t *testing.T) {
	r := newFixtureRepository()
	ctx := testContext()

	// Two SET arguments already consumed; the WHERE clause continues at $3.
	args := []any{"set-1", "set-2"}
	where := r.whereSQL(ctx, types.ByID("fix_1"), false, &args)

	assert.Equal(t, " WHERE tenant_id = $3 AND deleted_at IS NULL AND id = $4", where)
	assert.Equal(t, []any{"set-1", "set-2", "tenant_test", "fix_1"}, args)
}

func TestWhereSQLEmptyFilter(t *testing.T) {
	r := NewRepository[fixtureRow](nil, logger.NewNop(), Table{
		Name:    "plain",
		Entity:  "plain",
		Columns: []string{"id"},
	})

	var args []any
	where := r.whereSQL(context.Background(), types.Filter{}, false, &args)

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterKeysDeterministicOrder(t *testing.T) {
	f := types.NewFilter(map[string]any{
		"zeta":  1,
		"alpha": 2,
		"mid":   nil,
	})
	assert.Equal(t, []string{"alpha", "zeta"}, f.Keys())
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]any{"c": 1, "a": 2, "b": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Empty(t, sortedKeys(map[string]any{}))
}

func TestWithBaseColumns(t *testing.T) {
	cols := withBaseColumns("id", "name")
	assert.Equal(t, "id", cols[0])
	for _, envelope := range types.BaseModelColumns {
		assert.True(t, strings.Contains(strings.Join(cols, ","), envelope))
	}
	// The shared slice must not be mutated by successive descriptors.
	again := withBaseColumns("id", "slug")
	assert.Contains(t, again, "slug")
	assert.NotContains(t, cols, "slug")
}
