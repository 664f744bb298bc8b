package app

import (
	"context"
	_ "embed"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"ledger/internal/app/handler"
	"ledger/internal/app/logger"
	"ledger/internal/app/metrics"
	middleware2 "ledger/internal/app/middleware"
	"net/http"
	"time"
)

//go:embed docs/openapi.yaml
var openAPI []byte

type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterDeps struct {
	Logger         logger.Logger
	Users          handler.UserService
	Transactions   handler.TransactionService
	DB             Pinger
	Gatherer       prometheus.Gatherer
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

func (a *App) Router() http.Handler {
	return NewRouter(RouterDeps{
		Logger:         a.logger,
		Users:          a.ledger,
		Transactions:   a.ledger,
		DB:             a,
		Gatherer:       a.registry,
		Metrics:        a.metrics,
		AllowedOrigins: a.config.Server.AllowedOrigins(),
	})
}

func NewRouter(d RouterDeps) http.Handler {
	chain := alice.New(middleware.Recoverer).
		Append(middleware2.Log(d.Logger)...).
		Append(middleware2.CORS(d.AllowedOrigins))

	return chain.Then(routes(d))
}

// routes registers every endpoint, each of them is listed in docs/openapi.yaml
func routes(d RouterDeps) chi.Router {
	r := chi.NewRouter()
	if d.Metrics != nil {
		// inside chi so the matched route pattern is known
		r.Use(middleware2.Metrics(d.Metrics))
	}

	r.Get("/health", health(d.DB))
	r.Get("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	r.Get("/docs/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(openAPI)
	})

	uh := handler.NewUserHandler(d.Users)
	th := handler.NewTransactionHandler(d.Transactions)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", uh.Create)
		r.Get("/{id}", uh.Get)
		r.Get("/{id}/transactions", uh.Transactions)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", th.Create)
		r.Post("/direct", th.CreateDirect)
		r.Post("/transfer", th.CreateTransfer)
		r.Get("/{id}", th.Get)
		r.Post("/{id}/resolve", th.Resolve)
		r.Post("/{id}/accept", th.Accept)
		r.Post("/{id}/reject", th.Reject)
		r.Post("/{id}/refund", th.Refund)
	})

	return r
}

func health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			l := logger.Get(r.Context(), "Handler.Health")
			l.Error().Err(err).Msg("Database unavailable")
			handler.WriteError(w, err, http.StatusServiceUnavailable)
			return
		}

		handler.WriteResponse(w, struct {
			Status string `json:"status"`
		}{"ok"}, http.StatusOK)
	}
}
