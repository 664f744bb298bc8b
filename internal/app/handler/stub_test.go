package handler

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"ledger/internal/app/model"
	"net/http"
)

type stubUserService struct {
	createFn       func(context.Context, *model.User) (*model.User, error)
	userFn         func(context.Context, uuid.UUID) (*model.User, error)
	transactionsFn func(context.Context, uuid.UUID, int, int) ([]*model.TransactionView, error)
}

func (s stubUserService) CreateUser(ctx context.Context, m *model.User) (*model.User, error) {
	return s.createFn(ctx, m)
}

func (s stubUserService) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userFn(ctx, id)
}

func (s stubUserService) UserTransactions(ctx context.Context, id uuid.UUID, skip, count int) ([]*model.TransactionView, error) {
	return s.transactionsFn(ctx, id, skip, count)
}

type stubTransactionService struct {
	createFn  func(context.Context, *model.Transaction) (*model.TransactionView, error)
	getFn     func(context.Context, uuid.UUID) (*model.TransactionView, error)
	resolveFn func(context.Context, uuid.UUID, model.TransactionStatus) (*model.TransactionView, error)
	refundFn  func(context.Context, uuid.UUID) (*model.TransactionView, error)
}

func (s stubTransactionService) CreateTransaction(ctx context.Context, m *model.Transaction) (*model.TransactionView, error) {
	return s.createFn(ctx, m)
}

func (s stubTransactionService) Transaction(ctx context.Context, id uuid.UUID) (*model.TransactionView, error) {
	return s.getFn(ctx, id)
}

func (s stubTransactionService) Resolve(ctx context.Context, id uuid.UUID, decision model.TransactionStatus) (*model.TransactionView, error) {
	return s.resolveFn(ctx, id, decision)
}

func (s stubTransactionService) Refund(ctx context.Context, id uuid.UUID) (*model.TransactionView, error) {
	return s.refundFn(ctx, id)
}

// route mounts h on a chi router so url parameters are resolved
func route(method, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	return r
}
