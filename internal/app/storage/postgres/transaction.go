package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.TransactionRepository interface implementation
var _ storage.TransactionRepository = (*TransactionRepository)(nil)

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

type TransactionRepository struct {
	db *sql.DB
}

func (r *TransactionRepository) LoggerComponent() string {
	return "TransactionRepository"
}

func NewTransactionRepository(db *sql.DB) (*TransactionRepository, error) {
	s := &TransactionRepository{
		db: db,
	}
	return s, nil
}

// Create implementation of interface storage.TransactionRepository
func (r *TransactionRepository) Create(ctx context.Context, m *model.Transaction) (*model.Transaction, error) {
	return r.create(ctx, r.db, m)
}

// TxCreate implementation of interface storage.TransactionRepository
func (r *TransactionRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.Transaction) (*model.Transaction, error) {
	return r.create(ctx, tx, m)
}

func (r *TransactionRepository) create(ctx context.Context, q queryer, m *model.Transaction) (*model.Transaction, error) {
	l := logger.Get(ctx, r).With().
		Str("method", "Create").
		Str("user_id", m.UserID.String()).
		Logger()
	l.Debug().Msg("Creating transaction")

	const SQL = `
		INSERT INTO transactions (user_id, receiver_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
`
	err := q.QueryRowContext(ctx, SQL, m.UserID, m.ReceiverID, m.Amount).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			l.Debug().Err(err).Msg("Unknown user")
			return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
		}
		if isCheckViolation(err) || isOutOfRange(err) {
			l.Debug().Err(err).Msg("Amount rejected")
			return nil, fmt.Errorf("amount %s: %w", m.Amount, apperr.ErrInvalidInput)
		}
		return nil, fmt.Errorf("insert: %w", err)
	}

	return m, nil
}

// Read implementation of interface storage.TransactionRepository
func (r *TransactionRepository) Read(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	return r.read(ctx, r.db, id)
}

// TxRead implementation of interface storage.TransactionRepository
func (r *TransactionRepository) TxRead(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Transaction, error) {
	return r.read(ctx, tx, id)
}

func (r *TransactionRepository) read(ctx context.Context, q queryer, id uuid.UUID) (*model.Transaction, error) {
	const SQL = `
		SELECT id, created_at, user_id, receiver_id, amount
		FROM transactions
		WHERE id=$1
`
	m := &model.Transaction{}
	var receiverID uuid.NullUUID

	err := q.QueryRowContext(ctx, SQL, id).Scan(&m.ID, &m.CreatedAt, &m.UserID, &receiverID, &m.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("select: %w", err)
	}
	if receiverID.Valid {
		m.ReceiverID = &receiverID.UUID
	}

	return m, nil
}

// AllByUserID implementation of interface storage.TransactionRepository
func (r *TransactionRepository) AllByUserID(ctx context.Context, userID uuid.UUID, skip, count int) ([]*model.Transaction, error) {
	l := logger.Get(ctx, r).With().Str("method", "AllByUserID").Logger()

	// LIMIT NULL means no limit
	var limit sql.NullInt64
	if count > 0 {
		limit = sql.NullInt64{Int64: int64(count), Valid: true}
	}

	const SQL = `
		SELECT id, created_at, user_id, receiver_id, amount
		FROM transactions
		WHERE user_id=$1 OR receiver_id=$1
		ORDER BY created_at, id
		OFFSET $2
		LIMIT $3
`
	rows, err := r.db.QueryContext(ctx, SQL, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	res := make([]*model.Transaction, 0)

	for rows.Next() {
		m := &model.Transaction{}
		var receiverID uuid.NullUUID
		if err := rows.Scan(&m.ID, &m.CreatedAt, &m.UserID, &receiverID, &m.Amount); err != nil {
			l.Debug().Err(err).Send()
			return nil, fmt.Errorf("scan: %w", err)
		}
		if receiverID.Valid {
			m.ReceiverID = &receiverID.UUID
		}
		res = append(res, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return res, nil
}
