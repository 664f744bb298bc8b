package handler

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/model"
	"time"
)

type ref struct {
	ID   uuid.UUID `json:"id"`
	Href string    `json:"href"`
}

func userRef(id uuid.UUID) ref {
	return ref{ID: id, Href: "/users/" + id.String()}
}

func transactionRef(id uuid.UUID) ref {
	return ref{ID: id, Href: "/transactions/" + id.String()}
}

func optionalTransactionRef(id *uuid.UUID) *ref {
	if id == nil {
		return nil
	}
	r := transactionRef(*id)
	return &r
}

type userView struct {
	ref
	Email     string          `json:"email"`
	FirstName *string         `json:"first_name"`
	Surname   *string         `json:"surname"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

func newUserView(m *model.User) userView {
	return userView{
		ref:       userRef(m.ID),
		Email:     m.Email,
		FirstName: m.FirstName,
		Surname:   m.Surname,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
	}
}

type transactionView struct {
	ref
	User       ref                     `json:"user"`
	Receiver   *ref                    `json:"receiver"`
	Amount     decimal.Decimal         `json:"amount"`
	Status     model.TransactionStatus `json:"status"`
	Refunded   bool                    `json:"refunded"`
	RefundedBy *ref                    `json:"refunded_by"`
	RefundOf   *ref                    `json:"refund_of"`
	CreatedAt  time.Time               `json:"created_at"`
}

func newTransactionView(m *model.TransactionView) transactionView {
	v := transactionView{
		ref:        transactionRef(m.ID),
		User:       userRef(m.UserID),
		Amount:     m.Amount,
		Status:     m.Status,
		Refunded:   m.Refunded,
		RefundedBy: optionalTransactionRef(m.RefundedBy),
		RefundOf:   optionalTransactionRef(m.RefundOf),
		CreatedAt:  m.CreatedAt,
	}
	if m.ReceiverID != nil {
		r := userRef(*m.ReceiverID)
		v.Receiver = &r
	}
	return v
}

func newTransactionViews(mm []*model.TransactionView) []transactionView {
	res := make([]transactionView, 0, len(mm))
	for _, m := range mm {
		res = append(res, newTransactionView(m))
	}
	return res
}
