package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/model"
	storagemock "ledger/internal/app/storage/mock"
	"sync"
	"testing"
)

type mocks struct {
	tx           *storagemock.MockTransactor
	users        *storagemock.MockUserRepository
	balances     *storagemock.MockBalanceRepository
	transactions *storagemock.MockTransactionRepository
	resolutions  *storagemock.MockResolutionRepository
	refunds      *storagemock.MockRefundRepository
}

func newService(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		tx:           storagemock.NewMockTransactor(ctrl),
		users:        storagemock.NewMockUserRepository(ctrl),
		balances:     storagemock.NewMockBalanceRepository(ctrl),
		transactions: storagemock.NewMockTransactionRepository(ctrl),
		resolutions:  storagemock.NewMockResolutionRepository(ctrl),
		refunds:      storagemock.NewMockRefundRepository(ctrl),
	}

	// run the unit of work inline, repositories are mocked so no *sql.Tx is needed
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		},
	).AnyTimes()

	s := New(m.tx, Repositories{
		Users:        m.users,
		Balances:     m.balances,
		Transactions: m.transactions,
		Resolutions:  m.resolutions,
		Refunds:      m.refunds,
	})

	return s, m
}

func transfer(amount int64) *model.Transaction {
	receiver := uuid.New()
	return &model.Transaction{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ReceiverID: &receiver,
		Amount:     decimal.NewFromInt(amount),
	}
}

// lowID sorts before highID byte-wise
var (
	lowID  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID = uuid.MustParse("ffffffff-ffff-ffff-ffff-fffffffffffe")
)

func transferBetween(from, to uuid.UUID, amount int64) *model.Transaction {
	return &model.Transaction{
		ID:         uuid.New(),
		UserID:     from,
		ReceiverID: &to,
		Amount:     decimal.NewFromInt(amount),
	}
}

func direct(amount int64) *model.Transaction {
	return &model.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(amount),
	}
}

// expectState sets up the three lookups done when a transaction is read back
func (m mocks) expectState(tr *model.Transaction, res *model.Resolution, refunded *model.RefundLink) {
	m.transactions.EXPECT().Read(gomock.Any(), tr.ID).Return(tr, nil)
	if res != nil {
		m.resolutions.EXPECT().Read(gomock.Any(), tr.ID).Return(res, nil)
	} else {
		m.resolutions.EXPECT().Read(gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound)
	}
	if refunded != nil {
		m.refunds.EXPECT().ReadByOriginal(gomock.Any(), tr.ID).Return(refunded, nil)
	} else {
		m.refunds.EXPECT().ReadByOriginal(gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound)
	}
	m.refunds.EXPECT().ReadByRefund(gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound)
}

func TestService_State(t *testing.T) {
	ctx := context.Background()

	t.Run("new without resolution", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(10)
		m.expectState(tr, nil, nil)

		st, err := s.State(ctx, tr.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Status != model.TransactionStatusNew || st.Refunded {
			t.Fatalf("unexpected state: %+v", st)
		}
	})

	t.Run("resolution decides the status", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(10)
		refundID := uuid.New()
		m.expectState(tr,
			&model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted},
			&model.RefundLink{TransactionID: tr.ID, RefundTransactionID: refundID},
		)

		st, err := s.State(ctx, tr.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Status != model.TransactionStatusAccepted || !st.Refunded || *st.RefundedBy != refundID {
			t.Fatalf("unexpected state: %+v", st)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		s, m := newService(t)
		id := uuid.New()
		m.transactions.EXPECT().Read(gomock.Any(), id).Return(nil, apperr.ErrNotFound)

		if _, err := s.State(ctx, id); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestService_CreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("transfer", func(t *testing.T) {
		s, m := newService(t)
		tr := transfer(60)
		m.users.EXPECT().Read(gomock.Any(), tr.UserID).Return(&model.User{ID: tr.UserID}, nil)
		m.users.EXPECT().Read(gomock.Any(), *tr.ReceiverID).Return(&model.User{ID: *tr.ReceiverID}, nil)
		m.transactions.EXPECT().Create(gomock.Any(), tr).Return(tr, nil)

		v, err := s.CreateTransaction(ctx, tr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != model.TransactionStatusNew || v.Refunded {
			t.Fatalf("unexpected state: %+v", v.State)
		}
	})

	t.Run("unknown receiver", func(t *testing.T) {
		s, m := newService(t)
		tr := transfer(60)
		m.users.EXPECT().Read(gomock.Any(), tr.UserID).Return(&model.User{ID: tr.UserID}, nil)
		m.users.EXPECT().Read(gomock.Any(), *tr.ReceiverID).Return(nil, apperr.ErrNotFound)

		if _, err := s.CreateTransaction(ctx, tr); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("two decimal places", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(0)
		tr.Amount = decimal.RequireFromString("12.50")
		m.users.EXPECT().Read(gomock.Any(), tr.UserID).Return(&model.User{ID: tr.UserID}, nil)
		m.transactions.EXPECT().Create(gomock.Any(), tr).Return(tr, nil)

		if _, err := s.CreateTransaction(ctx, tr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	withAmount := func(tr *model.Transaction, amount string) *model.Transaction {
		tr.Amount = decimal.RequireFromString(amount)
		return tr
	}

	invalid := map[string]*model.Transaction{
		"zero amount":       direct(0),
		"negative transfer": transfer(-5),
		"sub-cent direct":   withAmount(direct(0), "0.001"),
		"sub-cent transfer": withAmount(transfer(0), "12.345"),
		"too large":         withAmount(direct(0), "1000000000000000000"),
		"too large deposit": withAmount(direct(0), "-1000000000000000000"),
		"transfer to self": func() *model.Transaction {
			tr := transfer(5)
			tr.ReceiverID = &tr.UserID
			return tr
		}(),
	}
	for name, tr := range invalid {
		tr := tr
		t.Run(name, func(t *testing.T) {
			s, _ := newService(t)
			if _, err := s.CreateTransaction(ctx, tr); !errors.Is(err, apperr.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted transfer moves the amount", func(t *testing.T) {
		s, m := newService(t)
		tr := transferBetween(lowID, highID, 100)
		res := &model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}

		gomock.InOrder(
			m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil),
			m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, nil),
			m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), tr.UserID, decimal.NewFromInt(-100), decimal.Zero).Return(nil),
			m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), *tr.ReceiverID, decimal.NewFromInt(100), decimal.Zero).Return(nil),
		)
		m.expectState(tr, res, nil)

		v, err := s.Resolve(ctx, tr.ID, model.TransactionStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != model.TransactionStatusAccepted {
			t.Fatalf("unexpected status: %s", v.Status)
		}
	})

	t.Run("receiver with the lower id is updated first", func(t *testing.T) {
		s, m := newService(t)
		tr := transferBetween(highID, lowID, 100)
		res := &model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}

		gomock.InOrder(
			m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil),
			m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, nil),
			m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), lowID, decimal.NewFromInt(100), decimal.Zero).Return(nil),
			m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), highID, decimal.NewFromInt(-100), decimal.Zero).Return(nil),
		)
		m.expectState(tr, res, nil)

		if _, err := s.Resolve(ctx, tr.ID, model.TransactionStatusAccepted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accepted direct only debits the sender", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(30)
		res := &model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}

		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, nil)
		m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), tr.UserID, decimal.NewFromInt(-30), decimal.Zero).Return(nil)
		m.expectState(tr, res, nil)

		if _, err := s.Resolve(ctx, tr.ID, model.TransactionStatusAccepted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected leaves balances alone", func(t *testing.T) {
		s, m := newService(t)
		tr := transfer(100)
		res := &model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusRejected}

		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, nil)
		m.expectState(tr, res, nil)

		v, err := s.Resolve(ctx, tr.ID, model.TransactionStatusRejected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != model.TransactionStatusRejected {
			t.Fatalf("unexpected status: %s", v.Status)
		}
	})

	t.Run("second resolution conflicts", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(10)

		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("resolved already: %w", apperr.ErrConflict))

		if _, err := s.Resolve(ctx, tr.ID, model.TransactionStatusRejected); !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("insufficient funds aborts", func(t *testing.T) {
		s, m := newService(t)
		tr := transferBetween(lowID, highID, 100)

		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}, nil)
		m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), tr.UserID, gomock.Any(), gomock.Any()).
			Return(apperr.ErrInsufficientFunds)

		if _, err := s.Resolve(ctx, tr.ID, model.TransactionStatusAccepted); !errors.Is(err, apperr.ErrInsufficientFunds) {
			t.Fatalf("expected insufficient funds, got %v", err)
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		s, _ := newService(t)
		if _, err := s.Resolve(ctx, uuid.New(), model.TransactionStatusNew); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

func TestService_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("not resolved", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(50)
		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound)

		if _, err := s.Refund(ctx, tr.ID); !errors.Is(err, apperr.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(50)
		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).
			Return(&model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusRejected}, nil)

		if _, err := s.Refund(ctx, tr.ID); !errors.Is(err, apperr.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	t.Run("refund of a refund", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(-50)
		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).
			Return(&model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}, nil)
		m.refunds.EXPECT().TxReadByRefund(gomock.Any(), gomock.Any(), tr.ID).
			Return(&model.RefundLink{TransactionID: uuid.New(), RefundTransactionID: tr.ID}, nil)

		if _, err := s.Refund(ctx, tr.ID); !errors.Is(err, apperr.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	t.Run("transfer is sent back and accepted", func(t *testing.T) {
		s, m := newService(t)
		tr := transfer(100)
		refundID := uuid.New()

		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).
			Return(&model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}, nil)
		m.refunds.EXPECT().TxReadByRefund(gomock.Any(), gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound)
		m.transactions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sql.Tx, r *model.Transaction) (*model.Transaction, error) {
				if r.UserID != *tr.ReceiverID || r.ReceiverID == nil || *r.ReceiverID != tr.UserID {
					t.Fatalf("refund does not swap parties: %+v", r)
				}
				if !r.Amount.Equal(tr.Amount) {
					t.Fatalf("unexpected refund amount: %s", r.Amount)
				}
				r.ID = refundID
				return r, nil
			},
		)
		m.refunds.EXPECT().TxCreate(gomock.Any(), gomock.Any(), &model.RefundLink{TransactionID: tr.ID, RefundTransactionID: refundID}).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, l *model.RefundLink) (*model.RefundLink, error) {
				return l, nil
			})
		m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), &model.Resolution{TransactionID: refundID, Status: model.TransactionStatusAccepted}).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, r *model.Resolution) (*model.Resolution, error) {
				return r, nil
			})
		m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), *tr.ReceiverID, decimal.NewFromInt(-100), decimal.Zero).Return(nil)
		m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), tr.UserID, decimal.NewFromInt(100), decimal.Zero).Return(nil)

		v, err := s.Refund(ctx, tr.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.ID != refundID || v.Status != model.TransactionStatusAccepted {
			t.Fatalf("unexpected refund: %+v", v)
		}
		if v.RefundOf == nil || *v.RefundOf != tr.ID {
			t.Fatalf("refund not linked to original: %+v", v.State)
		}
	})

	t.Run("direct is negated", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(50)

		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).
			Return(&model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}, nil)
		m.refunds.EXPECT().TxReadByRefund(gomock.Any(), gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound)
		m.transactions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sql.Tx, r *model.Transaction) (*model.Transaction, error) {
				r.ID = uuid.New()
				return r, nil
			},
		)
		m.refunds.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&model.RefundLink{}, nil)
		m.resolutions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&model.Resolution{}, nil)
		m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), tr.UserID, decimal.NewFromInt(50), decimal.Zero).Return(nil)

		v, err := s.Refund(ctx, tr.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Amount.Equal(decimal.NewFromInt(-50)) || v.ReceiverID != nil {
			t.Fatalf("unexpected refund: %+v", v.Transaction)
		}
	})

	t.Run("second refund conflicts", func(t *testing.T) {
		s, m := newService(t)
		tr := direct(50)

		m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil)
		m.resolutions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).
			Return(&model.Resolution{TransactionID: tr.ID, Status: model.TransactionStatusAccepted}, nil)
		m.refunds.EXPECT().TxReadByRefund(gomock.Any(), gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound)
		m.transactions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sql.Tx, r *model.Transaction) (*model.Transaction, error) {
				r.ID = uuid.New()
				return r, nil
			},
		)
		m.refunds.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("already refunded: %w", apperr.ErrConflict))

		if _, err := s.Refund(ctx, tr.ID); !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

// uniqueResolutions stands in for the primary key on transactions_resolve
type uniqueResolutions struct {
	storagemock.MockResolutionRepository
	mu   sync.Mutex
	rows map[uuid.UUID]*model.Resolution
}

func (u *uniqueResolutions) TxCreate(_ context.Context, _ *sql.Tx, m *model.Resolution) (*model.Resolution, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.rows[m.TransactionID]; ok {
		return nil, apperr.ErrConflict
	}
	u.rows[m.TransactionID] = m
	return m, nil
}

func (u *uniqueResolutions) Read(_ context.Context, id uuid.UUID) (*model.Resolution, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if r, ok := u.rows[id]; ok {
		return r, nil
	}
	return nil, apperr.ErrNotFound
}

func TestService_ResolveRace(t *testing.T) {
	s, m := newService(t)
	tr := direct(10)
	gate := &uniqueResolutions{rows: make(map[uuid.UUID]*model.Resolution)}
	s.resolutions = gate

	m.transactions.EXPECT().TxRead(gomock.Any(), gomock.Any(), tr.ID).Return(tr, nil).Times(2)
	m.transactions.EXPECT().Read(gomock.Any(), tr.ID).Return(tr, nil).AnyTimes()
	m.balances.EXPECT().TxApply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.refunds.EXPECT().ReadByOriginal(gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound).AnyTimes()
	m.refunds.EXPECT().ReadByRefund(gomock.Any(), tr.ID).Return(nil, apperr.ErrNotFound).AnyTimes()

	decisions := []model.TransactionStatus{model.TransactionStatusAccepted, model.TransactionStatusRejected}
	errs := make([]error, len(decisions))

	var wg sync.WaitGroup
	for i, d := range decisions {
		wg.Add(1)
		go func(i int, d model.TransactionStatus) {
			defer wg.Done()
			_, errs[i] = s.Resolve(context.Background(), tr.ID, d)
		}(i, d)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperr.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != 1 {
		t.Fatalf("expected one success and one conflict, got %d and %d", ok, conflicts)
	}
}
