package handler

import (
	"context"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"net/http"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, m *model.Transaction) (*model.TransactionView, error)
	Transaction(ctx context.Context, id uuid.UUID) (*model.TransactionView, error)
	Resolve(ctx context.Context, id uuid.UUID, decision model.TransactionStatus) (*model.TransactionView, error)
	Refund(ctx context.Context, id uuid.UUID) (*model.TransactionView, error)
}

type TransactionHandler struct {
	transactions TransactionService
}

func NewTransactionHandler(transactions TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
	}
}

type transactionRequest struct {
	UserID     uuid.UUID       `json:"user_id" validate:"required"`
	ReceiverID *uuid.UUID      `json:"receiver_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// Create accepts both kinds, a transfer is recognized by receiver_id
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, "Handler.Transaction.Create", func(in *transactionRequest) bool {
		return true
	})
}

func (h *TransactionHandler) CreateDirect(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, "Handler.Transaction.CreateDirect", func(in *transactionRequest) bool {
		return in.ReceiverID == nil
	})
}

func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, "Handler.Transaction.CreateTransfer", func(in *transactionRequest) bool {
		return in.ReceiverID != nil
	})
}

func (h *TransactionHandler) create(w http.ResponseWriter, r *http.Request, component string, kindOK func(*transactionRequest) bool) {
	l := logger.Get(r.Context(), component)

	in := &transactionRequest{}
	if err := readBody(r, in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if !validateData(w, in) {
		return
	}

	if !kindOK(in) {
		writeValidationErrors(w, ValidationErrors{{
			Msg:   "receiver_id does not match the transaction type",
			Param: "ReceiverID",
			Value: fmtOptionalID(in.ReceiverID),
		}})
		return
	}

	m, err := h.transactions.CreateTransaction(r.Context(), &model.Transaction{
		UserID:     in.UserID,
		ReceiverID: in.ReceiverID,
		Amount:     in.Amount,
	})
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	l.Debug().Str("transaction_id", m.ID.String()).Msg("Transaction created")
	WriteResponse(w, newTransactionView(m), http.StatusCreated)
}

func fmtOptionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	l := logger.Get(r.Context(), "Handler.Transaction.Get")

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	m, err := h.transactions.Transaction(r.Context(), id)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	WriteResponse(w, newTransactionView(m), http.StatusOK)
}

func (h *TransactionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	l := logger.Get(r.Context(), "Handler.Transaction.Resolve")

	in := struct {
		Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
	}{}

	if err := readBody(r, &in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if !validateData(w, in) {
		return
	}

	h.resolve(w, r, l, model.TransactionStatus(in.Decision))
}

func (h *TransactionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, logger.Get(r.Context(), "Handler.Transaction.Accept"), model.TransactionStatusAccepted)
}

func (h *TransactionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, logger.Get(r.Context(), "Handler.Transaction.Reject"), model.TransactionStatusRejected)
}

func (h *TransactionHandler) resolve(w http.ResponseWriter, r *http.Request, l logger.Logger, decision model.TransactionStatus) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	m, err := h.transactions.Resolve(r.Context(), id, decision)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	WriteResponse(w, newTransactionView(m), http.StatusOK)
}

func (h *TransactionHandler) Refund(w http.ResponseWriter, r *http.Request) {
	l := logger.Get(r.Context(), "Handler.Transaction.Refund")

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	m, err := h.transactions.Refund(r.Context(), id)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	l.Debug().Str("refund_transaction_id", m.ID.String()).Msg("Transaction refunded")
	WriteResponse(w, newTransactionView(m), http.StatusCreated)
}
