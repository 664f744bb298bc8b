package handler

import (
	"context"
	"github.com/google/uuid"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"net/http"
)

type UserService interface {
	CreateUser(ctx context.Context, m *model.User) (*model.User, error)
	User(ctx context.Context, id uuid.UUID) (*model.User, error)
	UserTransactions(ctx context.Context, userID uuid.UUID, skip, count int) ([]*model.TransactionView, error)
}

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	l := logger.Get(r.Context(), "Handler.User.Create")

	in := struct {
		Email     string  `json:"email" validate:"required,email,max=120"`
		Password  string  `json:"password" validate:"required,min=8,max=72"`
		FirstName *string `json:"first_name" validate:"omitempty,max=64"`
		Surname   *string `json:"surname" validate:"omitempty,max=64"`
	}{}

	if err := readBody(r, &in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if !validateData(w, in) {
		return
	}

	u, err := h.users.CreateUser(r.Context(), &model.User{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		Surname:   in.Surname,
	})
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	l.Debug().Str("user_id", u.ID.String()).Msg("User created")
	WriteResponse(w, newUserView(u), http.StatusCreated)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	l := logger.Get(r.Context(), "Handler.User.Get")

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	u, err := h.users.User(r.Context(), id)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	WriteResponse(w, newUserView(u), http.StatusOK)
}

func (h *UserHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	l := logger.Get(r.Context(), "Handler.User.Transactions")

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}
	count, err := queryInt(r, "count", 0)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	mm, err := h.users.UserTransactions(r.Context(), id, skip, count)
	if err != nil {
		writeServiceError(w, l, err)
		return
	}

	WriteResponse(w, newTransactionViews(mm), http.StatusOK)
}
