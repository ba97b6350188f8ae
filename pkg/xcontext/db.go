package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type (
	dbKey          struct{}
	transactionKey struct{}
)

type transaction struct {
	tx   *gorm.DB
	done bool
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the ongoing transaction if there is one, otherwise the plain database handle. The
// handle is bound to ctx so that cancelling the request aborts its queries.
func DB(ctx context.Context) *gorm.DB {
	if t, ok := ctx.Value(transactionKey{}).(*transaction); ok && !t.done {
		return t.tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		return nil
	}

	return db.WithContext(ctx)
}

// WithDBTransaction begins a transaction. Every DB call made with the returned context runs
// inside it until CommitDBTransaction or RollbackDBTransaction is called.
func WithDBTransaction(ctx context.Context) context.Context {
	tx := DB(ctx).Begin()
	return context.WithValue(ctx, transactionKey{}, &transaction{tx: tx})
}

func CommitDBTransaction(ctx context.Context) error {
	t, ok := ctx.Value(transactionKey{}).(*transaction)
	if !ok || t.done {
		return nil
	}

	t.done = true
	return t.tx.Commit().Error
}

// RollbackDBTransaction is a no-op if the transaction was already committed, so it is safe to
// defer right after WithDBTransaction.
func RollbackDBTransaction(ctx context.Context) {
	t, ok := ctx.Value(transactionKey{}).(*transaction)
	if !ok || t.done {
		return
	}

	t.done = true
	t.tx.Rollback()
}
