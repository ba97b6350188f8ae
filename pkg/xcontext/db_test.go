package xcontext_test

import (
	"context"
	"testing"

	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type counter struct {
	ID    uint
	Value int
}

func newTestDB(t *testing.T) context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&counter{}))
	return xcontext.WithDB(context.Background(), db)
}

func countRows(t *testing.T, ctx context.Context) int64 {
	var n int64
	require.NoError(t, xcontext.DB(ctx).Model(&counter{}).Count(&n).Error)
	return n
}

func TestDBTransactionCommit(t *testing.T) {
	ctx := newTestDB(t)

	txCtx := xcontext.WithDBTransaction(ctx)
	require.NoError(t, xcontext.DB(txCtx).Create(&counter{Value: 1}).Error)
	require.NoError(t, xcontext.CommitDBTransaction(txCtx))

	// Rolling back a committed transaction does nothing.
	xcontext.RollbackDBTransaction(txCtx)

	require.Equal(t, int64(1), countRows(t, ctx))
}

func TestDBTransactionRollback(t *testing.T) {
	ctx := newTestDB(t)

	txCtx := xcontext.WithDBTransaction(ctx)
	require.NoError(t, xcontext.DB(txCtx).Create(&counter{Value: 1}).Error)
	xcontext.RollbackDBTransaction(txCtx)

	require.Equal(t, int64(0), countRows(t, ctx))
	require.Equal(t, int64(0), countRows(t, txCtx))
}

func TestRequestUserID(t *testing.T) {
	ctx := context.Background()
	require.Zero(t, xcontext.RequestUserID(ctx))

	ctx = xcontext.WithRequestUserID(ctx, 42)
	require.Equal(t, uint(42), xcontext.RequestUserID(ctx))
}
