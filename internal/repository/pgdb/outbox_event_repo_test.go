package pgdb

import (
	"context"
	"testing"

	"github.com/glowshelf/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePool struct {
	tx *fakeTx
}

func (f *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	return f.tx, nil
}

func (f *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

type fakeTx struct {
	pgx.Tx
	rows       *fakeRows
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return f.rows, nil
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeRows struct {
	pgx.Rows
	calls   int
	scanErr error
	iterErr error
}

func (f *fakeRows) Next() bool {
	f.calls++
	return f.scanErr != nil && f.calls == 1
}

func (f *fakeRows) Scan(dest ...any) error {
	return f.scanErr
}

func (f *fakeRows) Err() error {
	return f.iterErr
}

func (f *fakeRows) Close() {}

func newOutboxRepoWithTx(tx *fakeTx) *OutboxEventRepo {
	return &OutboxEventRepo{
		pool: &fakePool{tx: tx},
		conv: generated.NewOutboxEventConverterImpl(),
	}
}

func TestGetAndMarkAsProcessingRollsBackOnScanFailure(t *testing.T) {
	tx := &fakeTx{rows: &fakeRows{scanErr: assert.AnError}}

	_, err := newOutboxRepoWithTx(tx).GetAndMarkAsProcessing(context.Background(), 10)

	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestGetAndMarkAsProcessingRollsBackOnIteratorError(t *testing.T) {
	tx := &fakeTx{rows: &fakeRows{iterErr: assert.AnError}}

	_, err := newOutboxRepoWithTx(tx).GetAndMarkAsProcessing(context.Background(), 10)

	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestGetAndMarkAsProcessingCommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{rows: &fakeRows{}}

	events, err := newOutboxRepoWithTx(tx).GetAndMarkAsProcessing(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}
