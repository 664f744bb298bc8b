package ledger

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/metrics"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// maxAmount is the first magnitude that no longer fits NUMERIC(20,2)
var maxAmount = decimal.New(1, 18)

type Service struct {
	tx           storage.Transactor
	users        storage.UserRepository
	balances     storage.BalanceRepository
	transactions storage.TransactionRepository
	resolutions  storage.ResolutionRepository
	refunds      storage.RefundRepository

	floor   decimal.Decimal
	metrics *metrics.Metrics
}

type Repositories struct {
	Users        storage.UserRepository
	Balances     storage.BalanceRepository
	Transactions storage.TransactionRepository
	Resolutions  storage.ResolutionRepository
	Refunds      storage.RefundRepository
}

type Option func(*Service)

// WithFloor sets the lowest balance a debit may leave behind
func WithFloor(floor decimal.Decimal) Option {
	return func(s *Service) {
		s.floor = floor
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func (s *Service) LoggerComponent() string {
	return "Ledger.Service"
}

func New(tx storage.Transactor, repos Repositories, opts ...Option) *Service {
	s := &Service{
		tx:           tx,
		users:        repos.Users,
		balances:     repos.Balances,
		transactions: repos.Transactions,
		resolutions:  repos.Resolutions,
		refunds:      repos.Refunds,
		floor:        decimal.Zero,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateUser registers a user with a zero balance
func (s *Service) CreateUser(ctx context.Context, m *model.User) (*model.User, error) {
	return s.users.Create(ctx, m)
}

// User returns the user with the current balance
func (s *Service) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.Read(ctx, id)
}

// CreateTransaction stores a pending transaction, balances are not touched
// until it is resolved.
func (s *Service) CreateTransaction(ctx context.Context, m *model.Transaction) (*model.TransactionView, error) {
	l := logger.Get(ctx, s).With().Str("method", "CreateTransaction").Logger()

	if err := validateTransaction(m); err != nil {
		l.Debug().Err(err).Send()
		return nil, err
	}

	if _, err := s.users.Read(ctx, m.UserID); err != nil {
		return nil, err
	}
	if m.IsTransfer() {
		if _, err := s.users.Read(ctx, *m.ReceiverID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, fmt.Errorf("receiver %s: %w", *m.ReceiverID, apperr.ErrNotFound)
			}
			return nil, err
		}
	}

	m, err := s.transactions.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	s.metrics.TransactionCreated(m.IsTransfer())
	l.Debug().Str("transaction_id", m.ID.String()).Msg("Transaction created")

	return &model.TransactionView{
		Transaction: *m,
		State:       model.DeriveState(nil, nil, nil),
	}, nil
}

func validateTransaction(m *model.Transaction) error {
	if m.Amount.IsZero() {
		return fmt.Errorf("amount must not be zero: %w", apperr.ErrInvalidInput)
	}
	if !m.Amount.Equal(m.Amount.Truncate(2)) {
		return fmt.Errorf("amount %s has more than two decimal places: %w", m.Amount, apperr.ErrInvalidInput)
	}
	if m.Amount.Abs().GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount %s is out of range: %w", m.Amount, apperr.ErrInvalidInput)
	}
	if !m.IsTransfer() {
		return nil
	}
	if !m.Amount.IsPositive() {
		return fmt.Errorf("transfer amount must be positive: %w", apperr.ErrInvalidInput)
	}
	if *m.ReceiverID == m.UserID {
		return fmt.Errorf("transfer to self: %w", apperr.ErrInvalidInput)
	}
	return nil
}

// State derives the status of an existing transaction from its resolution
// and refund records.
func (s *Service) State(ctx context.Context, id uuid.UUID) (model.State, error) {
	if _, err := s.transactions.Read(ctx, id); err != nil {
		return model.State{}, err
	}
	return s.state(ctx, id)
}

func (s *Service) state(ctx context.Context, id uuid.UUID) (model.State, error) {
	res, err := s.resolutions.Read(ctx, id)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return model.State{}, fmt.Errorf("resolution read: %w", err)
	}

	refunded, err := s.refunds.ReadByOriginal(ctx, id)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return model.State{}, fmt.Errorf("refund read: %w", err)
	}

	refundOf, err := s.refunds.ReadByRefund(ctx, id)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return model.State{}, fmt.Errorf("refund read: %w", err)
	}

	return model.DeriveState(res, refunded, refundOf), nil
}

// Transaction returns the transaction with its derived state
func (s *Service) Transaction(ctx context.Context, id uuid.UUID) (*model.TransactionView, error) {
	m, err := s.transactions.Read(ctx, id)
	if err != nil {
		return nil, err
	}

	st, err := s.state(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.TransactionView{Transaction: *m, State: st}, nil
}

// UserTransactions returns a page of transactions sent or received by the user.
// A count of zero returns everything after skip.
func (s *Service) UserTransactions(ctx context.Context, userID uuid.UUID, skip, count int) ([]*model.TransactionView, error) {
	if skip < 0 || count < 0 {
		return nil, fmt.Errorf("negative range: %w", apperr.ErrInvalidInput)
	}

	if _, err := s.users.Read(ctx, userID); err != nil {
		return nil, err
	}

	mm, err := s.transactions.AllByUserID(ctx, userID, skip, count)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(mm))
	for _, m := range mm {
		ids = append(ids, m.ID)
	}

	resolutions, err := s.resolutions.AllByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolutions: %w", err)
	}
	links, err := s.refunds.AllByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("refunds: %w", err)
	}

	byTransaction := make(map[uuid.UUID]*model.Resolution, len(resolutions))
	for _, r := range resolutions {
		byTransaction[r.TransactionID] = r
	}
	byOriginal := make(map[uuid.UUID]*model.RefundLink, len(links))
	byRefund := make(map[uuid.UUID]*model.RefundLink, len(links))
	for _, l := range links {
		byOriginal[l.TransactionID] = l
		byRefund[l.RefundTransactionID] = l
	}

	res := make([]*model.TransactionView, 0, len(mm))
	for _, m := range mm {
		res = append(res, &model.TransactionView{
			Transaction: *m,
			State:       model.DeriveState(byTransaction[m.ID], byOriginal[m.ID], byRefund[m.ID]),
		})
	}

	return res, nil
}

// Resolve records the decision for a transaction. Only the first decision
// wins, later ones fail with apperr.ErrConflict. Accepting applies the amount
// to the balances in the same database transaction.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, decision model.TransactionStatus) (*model.TransactionView, error) {
	l := logger.Get(ctx, s).With().
		Str("method", "Resolve").
		Str("transaction_id", id.String()).
		Str("decision", string(decision)).
		Logger()

	if !decision.Decision() {
		return nil, fmt.Errorf("decision %q: %w", decision, apperr.ErrInvalidInput)
	}

	err := s.tx.WithTx(ctx, func(tx *sql.Tx) error {
		m, err := s.transactions.TxRead(ctx, tx, id)
		if err != nil {
			return err
		}
		return s.resolve(ctx, tx, m, decision)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			s.metrics.Conflict("resolve")
		}
		l.Debug().Err(err).Msg("Resolve failed")
		return nil, err
	}

	s.metrics.Resolved(string(decision))
	l.Debug().Msg("Resolved")

	return s.Transaction(ctx, id)
}

func (s *Service) resolve(ctx context.Context, tx *sql.Tx, m *model.Transaction, decision model.TransactionStatus) error {
	_, err := s.resolutions.TxCreate(ctx, tx, &model.Resolution{
		TransactionID: m.ID,
		Status:        decision,
	})
	if err != nil {
		return err
	}

	if decision != model.TransactionStatusAccepted {
		return nil
	}

	return s.apply(ctx, tx, m)
}

// apply debits the sender and credits the receiver of an accepted transaction.
// Balance rows of a transfer are updated in UUID byte order so that opposite
// transfers accepted concurrently lock them in the same order.
func (s *Service) apply(ctx context.Context, tx *sql.Tx, m *model.Transaction) error {
	if !m.IsTransfer() {
		return s.balances.TxApply(ctx, tx, m.UserID, m.Amount.Neg(), s.floor)
	}

	type change struct {
		userID uuid.UUID
		delta  decimal.Decimal
	}
	changes := []change{
		{userID: m.UserID, delta: m.Amount.Neg()},
		{userID: *m.ReceiverID, delta: m.Amount},
	}
	if bytes.Compare(m.ReceiverID[:], m.UserID[:]) < 0 {
		changes[0], changes[1] = changes[1], changes[0]
	}

	for _, c := range changes {
		if err := s.balances.TxApply(ctx, tx, c.userID, c.delta, s.floor); err != nil {
			return err
		}
	}

	return nil
}

// Refund creates the compensating transaction for an accepted one, links it
// to the original and accepts it, all within one database transaction.
func (s *Service) Refund(ctx context.Context, id uuid.UUID) (*model.TransactionView, error) {
	l := logger.Get(ctx, s).With().
		Str("method", "Refund").
		Str("transaction_id", id.String()).
		Logger()

	var refund *model.Transaction

	err := s.tx.WithTx(ctx, func(tx *sql.Tx) error {
		m, err := s.transactions.TxRead(ctx, tx, id)
		if err != nil {
			return err
		}

		res, err := s.resolutions.TxRead(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return fmt.Errorf("transaction %s is not resolved: %w", id, apperr.ErrInvalidState)
			}
			return err
		}
		if res.Status != model.TransactionStatusAccepted {
			return fmt.Errorf("transaction %s is %s: %w", id, res.Status, apperr.ErrInvalidState)
		}

		_, err = s.refunds.TxReadByRefund(ctx, tx, id)
		if err == nil {
			return fmt.Errorf("transaction %s is refund: %w", id, apperr.ErrInvalidState)
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return err
		}

		refund, err = s.transactions.TxCreate(ctx, tx, m.Reversal())
		if err != nil {
			return err
		}

		_, err = s.refunds.TxCreate(ctx, tx, &model.RefundLink{
			TransactionID:       m.ID,
			RefundTransactionID: refund.ID,
		})
		if err != nil {
			return err
		}

		return s.resolve(ctx, tx, refund, model.TransactionStatusAccepted)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			s.metrics.Conflict("refund")
		}
		l.Debug().Err(err).Msg("Refund failed")
		return nil, err
	}

	s.metrics.Refunded()
	l.Debug().Str("refund_transaction_id", refund.ID.String()).Msg("Refunded")

	return &model.TransactionView{
		Transaction: *refund,
		State: model.DeriveState(
			&model.Resolution{TransactionID: refund.ID, Status: model.TransactionStatusAccepted},
			nil,
			&model.RefundLink{TransactionID: id, RefundTransactionID: refund.ID},
		),
	}, nil
}
