package model

import "github.com/google/uuid"

// State is the externally visible state of a transaction.
type State struct {
	Status     TransactionStatus
	Refunded   bool
	RefundedBy *uuid.UUID
	RefundOf   *uuid.UUID
}

// DeriveState computes a transaction state from its satellite rows.
// res is the resolution of the transaction, refunded is the link where the
// transaction is the original one and refundOf the link where it is the refund.
// Any of them may be nil.
func DeriveState(res *Resolution, refunded *RefundLink, refundOf *RefundLink) State {
	s := State{Status: TransactionStatusNew}
	if res != nil {
		s.Status = res.Status
	}
	if refunded != nil {
		id := refunded.RefundTransactionID
		s.Refunded = true
		s.RefundedBy = &id
	}
	if refundOf != nil {
		id := refundOf.TransactionID
		s.RefundOf = &id
	}
	return s
}

// TransactionView is a transaction together with its derived state.
type TransactionView struct {
	Transaction
	State
}
