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

// storage.ResolutionRepository interface implementation
var _ storage.ResolutionRepository = (*ResolutionRepository)(nil)

type ResolutionRepository struct {
	db *sql.DB
}

func (r *ResolutionRepository) LoggerComponent() string {
	return "ResolutionRepository"
}

func NewResolutionRepository(db *sql.DB) (*ResolutionRepository, error) {
	s := &ResolutionRepository{
		db: db,
	}
	return s, nil
}

// Read implementation of interface storage.ResolutionRepository
func (r *ResolutionRepository) Read(ctx context.Context, transactionID uuid.UUID) (*model.Resolution, error) {
	return r.read(ctx, r.db, transactionID)
}

// TxRead implementation of interface storage.ResolutionRepository
func (r *ResolutionRepository) TxRead(ctx context.Context, tx *sql.Tx, transactionID uuid.UUID) (*model.Resolution, error) {
	return r.read(ctx, tx, transactionID)
}

func (r *ResolutionRepository) read(ctx context.Context, q queryer, transactionID uuid.UUID) (*model.Resolution, error) {
	const SQL = `
		SELECT transaction_id, status, resolved_at
		FROM transactions_resolve
		WHERE transaction_id=$1
`
	m := &model.Resolution{}

	err := q.QueryRowContext(ctx, SQL, transactionID).Scan(&m.TransactionID, &m.Status, &m.ResolvedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}

// TxCreate implementation of interface storage.ResolutionRepository
func (r *ResolutionRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.Resolution) (*model.Resolution, error) {
	l := logger.Get(ctx, r).With().
		Str("method", "TxCreate").
		Str("transaction_id", m.TransactionID.String()).
		Str("status", string(m.Status)).
		Logger()

	if !m.Status.Decision() {
		return nil, fmt.Errorf("decision %q: %w", m.Status, apperr.ErrInvalidInput)
	}

	// the primary key on transaction_id lets only the first writer through
	const SQL = `
		INSERT INTO transactions_resolve (transaction_id, status)
		VALUES ($1, $2)
		RETURNING resolved_at
`
	err := tx.QueryRowContext(ctx, SQL, m.TransactionID, m.Status).Scan(&m.ResolvedAt)
	if err != nil {
		if isUniqueViolation(err) {
			l.Debug().Msg("Already resolved")
			return nil, fmt.Errorf("transaction %s was resolved already: %w", m.TransactionID, apperr.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("transaction %s: %w", m.TransactionID, apperr.ErrNotFound)
		}
		l.Error().Err(err).Msg("Resolve insert failed")
		return nil, fmt.Errorf("insert: %w", err)
	}

	return m, nil
}

// AllByTransactionIDs implementation of interface storage.ResolutionRepository
func (r *ResolutionRepository) AllByTransactionIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Resolution, error) {
	res := make([]*model.Resolution, 0, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	const SQL = `
		SELECT transaction_id, status, resolved_at
		FROM transactions_resolve
		WHERE transaction_id = ANY($1::uuid[])
`
	rows, err := r.db.QueryContext(ctx, SQL, pg.Array(uuidStrings(ids)))
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		m := &model.Resolution{}
		if err := rows.Scan(&m.TransactionID, &m.Status, &m.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return res, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
