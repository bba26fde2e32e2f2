package migrations

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	queries []string
	failAt  int
}

func (e *recordingExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.queries = append(e.queries, query)
	if e.failAt > 0 && len(e.queries) == e.failAt {
		return nil, errors.New("syntax error")
	}
	return nil, nil
}

func (e *recordingExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (e *recordingExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}

func TestMigrate_AppliesAllStatementsInOrder(t *testing.T) {
	exec := &recordingExecutor{}

	require.NoError(t, Migrate(context.Background(), exec, nopLogger{}))
	require.Len(t, exec.queries, len(statements))

	assert.Contains(t, exec.queries[0], "btree_gist")

	var exclusion string
	for _, q := range exec.queries {
		if strings.Contains(q, "reservation_tables_no_overlap") {
			exclusion = q
		}
	}
	require.NotEmpty(t, exclusion)
	assert.Contains(t, exclusion, "'[)'")
	assert.Contains(t, exclusion, "WHERE (NOT is_cancelled)")
}

func TestMigrate_StopsOnError(t *testing.T) {
	exec := &recordingExecutor{failAt: 2}

	err := Migrate(context.Background(), exec, nopLogger{})

	assert.ErrorIs(t, err, ErrMigrate)
	assert.Len(t, exec.queries, 2)
}
