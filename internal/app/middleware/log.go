package middleware

import (
	"context"
	"github.com/justinas/alice"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ledger/internal/app/logger"
	"net/http"
	"time"
)

const RequestIDHeader = "X-Request-Id"

type ctxKeyRequestID struct{}

// RequestIDFromContext returns the id assigned by RequestID
func RequestIDFromContext(ctx context.Context) (xid.ID, bool) {
	id, ok := ctx.Value(ctxKeyRequestID{}).(xid.ID)
	return id, ok
}

// RequestID reuses a valid incoming request id or generates a new one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := xid.FromString(r.Header.Get(RequestIDHeader))
		if err != nil {
			id = xid.New()
		}

		ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, id)
		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", id.String())
		})

		w.Header().Set(RequestIDHeader, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Log attaches l to the request context and writes an access log line
func Log(l logger.Logger) []alice.Constructor {
	return []alice.Constructor{
		hlog.NewHandler(l.Logger),
		RequestID,
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Debug().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("Request served")
		}),
	}
}
