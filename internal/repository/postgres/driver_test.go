package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

// recordingDriver is a no-op database driver that captures every prepared
// statement: exec statements affect zero rows, queries return no rows. It
// lets repository tests observe the exact SQL handed to the driver.
type recordingDriver struct{}

var recorded struct {
	sync.Mutex
	queries []string
}

func record(query string) {
	recorded.Lock()
	defer recorded.Unlock()
	recorded.queries = append(recorded.queries, query)
}

func lastRecorded() string {
	recorded.Lock()
	defer recorded.Unlock()
	if len(recorded.queries) == 0 {
		return ""
	}
	return recorded.queries[len(recorded.queries)-1]
}

func (recordingDriver) Open(string) (driver.Conn, error) { return recordingConn{}, nil }

type recordingConn struct{}

func (recordingConn) Prepare(query string) (driver.Stmt, error) {
	record(query)
	return recordingStmt{}, nil
}
func (recordingConn) Close() error              { return nil }
func (recordingConn) Begin() (driver.Tx, error) { return nil, errors.New("not supported") }

type recordingStmt struct{}

func (recordingStmt) Close() error  { return nil }
func (recordingStmt) NumInput() int { return -1 }
func (recordingStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.RowsAffected(0), nil
}
func (recordingStmt) Query([]driver.Value) (driver.Rows, error) { return emptyRows{}, nil }

type emptyRows struct{}

func (emptyRows) Columns() []string        { return nil }
func (emptyRows) Close() error             { return nil }
func (emptyRows) Next([]driver.Value) error { return io.EOF }

var registerRecording sync.Once

func newRecordingRepository(t *testing.T) *Repository[fixtureRow] {
	registerRecording.Do(func() { sql.Register("recording", recordingDriver{}) })
	sqldb, err := sql.Open("recording", "")
	require.NoError(t, err)
	db := sqlx.NewDb(sqldb, "recording")
	return NewRepository[fixtureRow](&postgres.DB{DB: db}, logger.NewNop(), fixtureTable)
}

func TestRestoreEmptyFilterTargetsDeletedRows(t *testing.T) {
	r := newRecordingRepository(t)

	// No tenant, no user, no filter: the deleted-rows guard must still land
	// in a well-formed WHERE clause.
	n, err := r.Restore(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.Equal(t,
		"UPDATE fixtures SET deleted_at = NULL, deleted_by = NULL, updated_at = $1 WHERE deleted_at IS NOT NULL",
		lastRecorded(),
	)
}

func TestRestoreScopedFilterKeepsDeletedGuard(t *testing.T) {
	r := newRecordingRepository(t)

	_, err := r.Restore(testContext(), types.ByID("fix_1"))
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE fixtures SET deleted_at = NULL, deleted_by = NULL, updated_at = $1, updated_by = $2"+
			" WHERE tenant_id = $3 AND id = $4 AND deleted_at IS NOT NULL",
		lastRecorded(),
	)
}

func TestCreateRejectsZeroRowInsert(t *testing.T) {
	r := newRecordingRepository(t)
	ctx := testContext()

	row := &fixtureRow{ID: "fix_1", Name: "villa", BaseModel: types.GetDefaultBaseModel(ctx)}
	created, err := r.Create(ctx, row)
	require.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, ierr.IsDatabase(err))
	assert.Contains(t, err.Error(), "insert returned no row")
}
