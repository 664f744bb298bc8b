package client

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

type Ref struct {
	ID   uuid.UUID `json:"id"`
	Href string    `json:"href"`
}

type CreateUserRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	Surname   *string `json:"surname,omitempty"`
}

type User struct {
	Ref
	Email     string          `json:"email"`
	FirstName *string         `json:"first_name"`
	Surname   *string         `json:"surname"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateTransactionRequest struct {
	UserID     uuid.UUID       `json:"user_id"`
	ReceiverID *uuid.UUID      `json:"receiver_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
}

type Transaction struct {
	Ref
	User       Ref             `json:"user"`
	Receiver   *Ref            `json:"receiver"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Refunded   bool            `json:"refunded"`
	RefundedBy *Ref            `json:"refunded_by"`
	RefundOf   *Ref            `json:"refund_of"`
	CreatedAt  time.Time       `json:"created_at"`
}

type resolveRequest struct {
	Decision string `json:"decision"`
}
