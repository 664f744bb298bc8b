package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/jackc/pgerrcode"
	pg "github.com/lib/pq"
	"ledger/internal/app/logger"
	"ledger/internal/app/storage"
)

// storage.Transactor interface implementation
var _ storage.Transactor = (*Transactor)(nil)

type Transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db}
}

// WithTx implementation of interface storage.Transactor
func (t *Transactor) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	l := logger.Ctx(ctx).With().Str("method", "WithTx").Logger()

	// unique constraints serialize competing writers, read committed is enough
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		l.Error().Err(err).Msg("DB transaction begin")
		return fmt.Errorf("tx begin: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Msg("TX commit failed")
		return fmt.Errorf("tx commit: %w", err)
	}

	return nil
}

func pgCode(err error) string {
	var pgErr *pg.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgerrcode.ForeignKeyViolation
}

func isCheckViolation(err error) bool {
	return pgCode(err) == pgerrcode.CheckViolation
}

func isOutOfRange(err error) bool {
	return pgCode(err) == pgerrcode.NumericValueOutOfRange
}
