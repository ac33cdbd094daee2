package persistence

import (
	"context"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type txContextKey struct{}

// DBFromContext returns the transaction handle injected by Execute, or
// fallback when the ctx carries none. Repositories call this so the same
// method works inside and outside a transaction.
func DBFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

type gormTransactionManager struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewGormTransactionManager(db *gorm.DB, logger *zap.Logger) contracts.TransactionManager {
	return &gormTransactionManager{
		DB:  db,
		Log: logger,
	}
}

func (m *gormTransactionManager) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txContextKey{}, tx)
		return fn(txCtx)
	})
	if err == nil {
		return nil
	}
	if _, ok := err.(*exceptions.CustomError); ok {
		return err
	}
	m.Log.Error("gormTransactionManager.Execute transaction rolled back",
		zap.Error(err),
	)
	return exceptions.ErrPostgresDBTransaction(err)
}
