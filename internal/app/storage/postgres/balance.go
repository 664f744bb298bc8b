package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/storage"
)

// storage.BalanceRepository interface implementation
var _ storage.BalanceRepository = (*BalanceRepository)(nil)

type BalanceRepository struct{}

func (r *BalanceRepository) LoggerComponent() string {
	return "BalanceRepository"
}

func NewBalanceRepository() (*BalanceRepository, error) {
	return &BalanceRepository{}, nil
}

// TxApply implementation of interface storage.BalanceRepository
func (r *BalanceRepository) TxApply(ctx context.Context, tx *sql.Tx, userID uuid.UUID, delta decimal.Decimal, floor decimal.Decimal) error {
	l := logger.Get(ctx, r).With().
		Str("method", "TxApply").
		Str("user_id", userID.String()).
		Str("delta", delta.String()).
		Logger()

	// credits always pass, debits only while the result stays above floor
	const SQL = `
		UPDATE balances
		SET amount=amount+$1::numeric, updated_at=NOW()
		WHERE user_id=$2 AND ($1::numeric >= 0 OR amount+$1::numeric >= $3::numeric)
`
	res, err := tx.ExecContext(ctx, SQL, delta, userID, floor)
	if err != nil {
		l.Error().Err(err).Msg("Balance update failed")
		return fmt.Errorf("update: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		if delta.IsNegative() {
			l.Debug().Msg("Insufficient funds")
			return fmt.Errorf("user %s: %w", userID, apperr.ErrInsufficientFunds)
		}
		return fmt.Errorf("balance of user %s: %w", userID, apperr.ErrNotFound)
	}

	return nil
}
