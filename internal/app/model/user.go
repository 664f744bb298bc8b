package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

type User struct {
	ID        uuid.UUID
	CreatedAt time.Time
	FirstName *string
	Surname   *string
	Email     string
	Password  string
	Balance   decimal.Decimal
}
