package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func countAttempts(t *testing.T, r *SQLiteRepository) int {
	t.Helper()
	got, err := r.Recent(context.Background(), 1000)
	require.NoError(t, err)
	return len(got)
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, NewSQLiteRepository(tx).Record(ctx, attempt("s1", t0, true)))
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countAttempts(t, r), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	defer func() {
		if p := recover(); p == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countAttempts(t, r), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, NewSQLiteRepository(tx).Record(ctx, attempt("s1", t0, true)))
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}

func TestPrune_KeepsNewest(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"s1", "s2", "s3", "s4"} {
		require.NoError(t, r.Record(ctx, attempt(id, t0.Add(time.Duration(i)*time.Hour), true)))
	}

	removed, err := Prune(ctx, db, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	got, err := r.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "s4", got[0].SessionID)
	require.Equal(t, "s3", got[1].SessionID)

	removed, err = Prune(ctx, db, 10)
	require.NoError(t, err)
	require.Zero(t, removed)
}
