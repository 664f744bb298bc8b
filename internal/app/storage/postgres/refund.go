package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	pg "github.com/lib/pq"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.RefundRepository interface implementation
var _ storage.RefundRepository = (*RefundRepository)(nil)

type RefundRepository struct {
	db *sql.DB
}

func (r *RefundRepository) LoggerComponent() string {
	return "RefundRepository"
}

func NewRefundRepository(db *sql.DB) (*RefundRepository, error) {
	s := &RefundRepository{
		db: db,
	}
	return s, nil
}

// ReadByOriginal implementation of interface storage.RefundRepository
func (r *RefundRepository) ReadByOriginal(ctx context.Context, transactionID uuid.UUID) (*model.RefundLink, error) {
	const SQL = `
		SELECT transaction_id, refund_transaction_id, created_at
		FROM transactions_refund
		WHERE transaction_id=$1
`
	return r.read(ctx, r.db, SQL, transactionID)
}

// ReadByRefund implementation of interface storage.RefundRepository
func (r *RefundRepository) ReadByRefund(ctx context.Context, refundTransactionID uuid.UUID) (*model.RefundLink, error) {
	return r.readByRefund(ctx, r.db, refundTransactionID)
}

// TxReadByRefund implementation of interface storage.RefundRepository
func (r *RefundRepository) TxReadByRefund(ctx context.Context, tx *sql.Tx, refundTransactionID uuid.UUID) (*model.RefundLink, error) {
	return r.readByRefund(ctx, tx, refundTransactionID)
}

func (r *RefundRepository) readByRefund(ctx context.Context, q queryer, refundTransactionID uuid.UUID) (*model.RefundLink, error) {
	const SQL = `
		SELECT transaction_id, refund_transaction_id, created_at
		FROM transactions_refund
		WHERE refund_transaction_id=$1
`
	return r.read(ctx, q, SQL, refundTransactionID)
}

func (r *RefundRepository) read(ctx context.Context, q queryer, query string, id uuid.UUID) (*model.RefundLink, error) {
	m := &model.RefundLink{}

	err := q.QueryRowContext(ctx, query, id).Scan(&m.TransactionID, &m.RefundTransactionID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}

// TxCreate implementation of interface storage.RefundRepository
func (r *RefundRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.RefundLink) (*model.RefundLink, error) {
	l := logger.Get(ctx, r).With().
		Str("method", "TxCreate").
		Str("transaction_id", m.TransactionID.String()).
		Str("refund_transaction_id", m.RefundTransactionID.String()).
		Logger()

	const SQL = `
		INSERT INTO transactions_refund (transaction_id, refund_transaction_id)
		VALUES ($1, $2)
		RETURNING created_at
`
	err := tx.QueryRowContext(ctx, SQL, m.TransactionID, m.RefundTransactionID).Scan(&m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			l.Debug().Msg("Already refunded")
			return nil, fmt.Errorf("transaction %s already refunded: %w", m.TransactionID, apperr.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("transaction %s: %w", m.TransactionID, apperr.ErrNotFound)
		}
		l.Error().Err(err).Msg("Refund insert failed")
		return nil, fmt.Errorf("insert: %w", err)
	}

	return m, nil
}

// AllByTransactionIDs implementation of interface storage.RefundRepository
func (r *RefundRepository) AllByTransactionIDs(ctx context.Context, ids []uuid.UUID) ([]*model.RefundLink, error) {
	res := make([]*model.RefundLink, 0)
	if len(ids) == 0 {
		return res, nil
	}

	const SQL = `
		SELECT transaction_id, refund_transaction_id, created_at
		FROM transactions_refund
		WHERE transaction_id = ANY($1::uuid[]) OR refund_transaction_id = ANY($1::uuid[])
`
	rows, err := r.db.QueryContext(ctx, SQL, pg.Array(uuidStrings(ids)))
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		m := &model.RefundLink{}
		if err := rows.Scan(&m.TransactionID, &m.RefundTransactionID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return res, nil
}
