package journal

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the part of database/sql the repository needs. Both *sql.DB and
// *sql.Tx satisfy it, so a repository can be bound to either.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction on db. The transaction is committed when
// fn returns nil and rolled back on error or panic; panics are re-raised.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// Prune keeps the newest keep attempts and deletes the rest in one
// transaction. It returns how many rows were removed.
func Prune(ctx context.Context, db *sql.DB, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	var removed int64
	err := WithTx(ctx, db, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, `delete from attempts where session_id not in
			(select session_id from attempts order by started_at desc, session_id desc limit ?)`, keep)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}
	return removed, nil
}
