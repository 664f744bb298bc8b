package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.UserRepository interface implementation
var _ storage.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	db   *sql.DB
	cost int
}

func (r *UserRepository) LoggerComponent() string {
	return "UserRepository"
}

func NewUserRepository(db *sql.DB) (*UserRepository, error) {
	s := &UserRepository{
		db:   db,
		cost: bcrypt.DefaultCost,
	}
	return s, nil
}

// Create implementation of interface storage.UserRepository
func (r *UserRepository) Create(ctx context.Context, m *model.User) (*model.User, error) {
	l := logger.Get(ctx, r).With().Str("method", "Create").Logger()

	hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), r.cost)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("tx begin: %w", err)
	}

	const sqlUser = `
		INSERT INTO users (first_name, surname, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
`
	err = tx.QueryRowContext(ctx, sqlUser, m.FirstName, m.Surname, m.Email, string(hash)).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			l.Debug().Str("email", m.Email).Msg("Email taken")
			return nil, fmt.Errorf("email %s is already taken: %w", m.Email, apperr.ErrConflict)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	const sqlBalance = `INSERT INTO balances (user_id, amount) VALUES ($1, 0)`
	if _, err := tx.ExecContext(ctx, sqlBalance, m.ID); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("tx commit: %w", err)
	}

	m.Password = ""
	m.Balance = decimal.Zero

	return m, nil
}

// Read implementation of interface storage.UserRepository
func (r *UserRepository) Read(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const SQL = `
		SELECT u.id, u.created_at, u.first_name, u.surname, u.email, b.amount
		FROM users u
		JOIN balances b ON b.user_id = u.id
		WHERE u.id=$1
`
	m := &model.User{}

	err := r.db.QueryRowContext(ctx, SQL, id).Scan(&m.ID, &m.CreatedAt, &m.FirstName, &m.Surname, &m.Email, &m.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}
