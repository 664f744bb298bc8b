package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

// Transaction is immutable once created. A transfer has ReceiverID set,
// a direct transaction does not.
type Transaction struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	UserID     uuid.UUID
	ReceiverID *uuid.UUID
	Amount     decimal.Decimal
}

func (t *Transaction) IsTransfer() bool {
	return t.ReceiverID != nil
}

// Reversal returns the compensating transaction for t: a transfer is sent
// back from the receiver to the sender, a direct transaction is negated.
func (t *Transaction) Reversal() *Transaction {
	if t.IsTransfer() {
		sender := t.UserID
		return &Transaction{
			UserID:     *t.ReceiverID,
			ReceiverID: &sender,
			Amount:     t.Amount,
		}
	}

	return &Transaction{
		UserID: t.UserID,
		Amount: t.Amount.Neg(),
	}
}

type TransactionStatus string

const (
	TransactionStatusNew      TransactionStatus = "new"
	TransactionStatusAccepted TransactionStatus = "accepted"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// Decision reports whether s can be recorded as a resolution.
func (s TransactionStatus) Decision() bool {
	return s == TransactionStatusAccepted || s == TransactionStatusRejected
}

// Resolution is the single decision recorded for a transaction.
type Resolution struct {
	TransactionID uuid.UUID
	Status        TransactionStatus
	ResolvedAt    time.Time
}

// RefundLink ties an original transaction to the transaction refunding it.
type RefundLink struct {
	TransactionID       uuid.UUID
	RefundTransactionID uuid.UUID
	CreatedAt           time.Time
}
