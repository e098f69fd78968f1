package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a unit of work inside a single-level database
// transaction. Statements execute in caller order; any returned error
// rolls the whole unit back, so no partial state is ever visible.
// Generated identifiers are back-filled on the models as each Create
// executes, so later statements in fn can reference them.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct{ db *gorm.DB }

func NewTxManager(db *gorm.DB) TxManager { return &gormTxManager{db: db} }

func (m *gormTxManager) RunInTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.db == nil {
		// unit test mode — no database behind the repositories
		return fn(nil)
	}
	return m.db.WithContext(ctx).Transaction(fn)
}
