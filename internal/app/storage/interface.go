//go:generate mockgen -source=./interface.go -destination=./mock/storage.go -package=storagemock
package storage

import (
	"context"
	"database/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/model"
)

type Transactor interface {
	// WithTx runs fn inside a single database transaction, committing when fn returns nil
	WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type UserRepository interface {
	// Create a new model.User together with its zero balance
	Create(ctx context.Context, m *model.User) (*model.User, error)
	// Read instance of model.User with its balance
	Read(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type BalanceRepository interface {
	// TxApply adds delta to the user balance within the tx, refusing debits that cross floor
	TxApply(ctx context.Context, tx *sql.Tx, userID uuid.UUID, delta decimal.Decimal, floor decimal.Decimal) error
}

type TransactionRepository interface {
	// Create a new model.Transaction
	Create(ctx context.Context, m *model.Transaction) (*model.Transaction, error)
	// TxCreate a new model.Transaction within the tx
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.Transaction) (*model.Transaction, error)
	// Read instance of model.Transaction
	Read(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	// TxRead instance of model.Transaction within the tx
	TxRead(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Transaction, error)
	// AllByUserID returns a page of transactions sent or received by the user
	AllByUserID(ctx context.Context, userID uuid.UUID, skip, count int) ([]*model.Transaction, error)
}

type ResolutionRepository interface {
	// Read resolution of the transaction
	Read(ctx context.Context, transactionID uuid.UUID) (*model.Resolution, error)
	// TxRead resolution of the transaction within the tx
	TxRead(ctx context.Context, tx *sql.Tx, transactionID uuid.UUID) (*model.Resolution, error)
	// TxCreate records the resolution within the tx, at most once per transaction
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.Resolution) (*model.Resolution, error)
	// AllByTransactionIDs returns resolutions of the given transactions
	AllByTransactionIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Resolution, error)
}

type RefundRepository interface {
	// ReadByOriginal returns the link where the transaction is the refunded one
	ReadByOriginal(ctx context.Context, transactionID uuid.UUID) (*model.RefundLink, error)
	// ReadByRefund returns the link where the transaction is the refund
	ReadByRefund(ctx context.Context, refundTransactionID uuid.UUID) (*model.RefundLink, error)
	// TxReadByRefund returns the link where the transaction is the refund within the tx
	TxReadByRefund(ctx context.Context, tx *sql.Tx, refundTransactionID uuid.UUID) (*model.RefundLink, error)
	// TxCreate records the link within the tx, at most once per original transaction
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.RefundLink) (*model.RefundLink, error)
	// AllByTransactionIDs returns links touching any of the given transactions
	AllByTransactionIDs(ctx context.Context, ids []uuid.UUID) ([]*model.RefundLink, error)
}
