// Package client is an HTTP client for the ledger API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	apiURL     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     zerolog.Logger
}

func (c *Client) LoggerComponent() string {
	return "Ledger.Client"
}

func New(apiURL string, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(apiURL); err != nil {
		return nil, fmt.Errorf("api url: %w", err)
	}

	c := &Client{
		apiURL:     apiURL,
		httpClient: http.DefaultClient,
		logger:     log.Logger,
	}

	for _, o := range opts {
		o(c)
	}

	c.logger = c.logger.With().Str("component", c.LoggerComponent()).Logger()

	if c.breaker == nil {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "ledger",
			Timeout: 10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.logger.Warn().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("Circuit breaker state changed")
			},
		})
	}

	return c, nil
}

type Option func(*Client)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBreaker replaces the default circuit breaker
func WithBreaker(cb *gobreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

func (c *Client) CreateUser(ctx context.Context, in *CreateUserRequest) (*User, error) {
	out := &User{}
	if err := c.genericCall(ctx, http.MethodPost, "/users", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) User(ctx context.Context, id uuid.UUID) (*User, error) {
	out := &User{}
	if err := c.genericCall(ctx, http.MethodGet, "/users/"+id.String(), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserTransactions lists transactions of the user, count 0 means all
func (c *Client) UserTransactions(ctx context.Context, id uuid.UUID, skip, count int) ([]*Transaction, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("count", strconv.Itoa(count))

	var out []*Transaction
	if err := c.genericCall(ctx, http.MethodGet, "/users/"+id.String()+"/transactions?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTransaction(ctx context.Context, in *CreateTransactionRequest) (*Transaction, error) {
	endpoint := "/transactions/direct"
	if in.ReceiverID != nil {
		endpoint = "/transactions/transfer"
	}

	out := &Transaction{}
	if err := c.genericCall(ctx, http.MethodPost, endpoint, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Transaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	out := &Transaction{}
	if err := c.genericCall(ctx, http.MethodGet, "/transactions/"+id.String(), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve records decision, either "accepted" or "rejected"
func (c *Client) Resolve(ctx context.Context, id uuid.UUID, decision string) (*Transaction, error) {
	out := &Transaction{}
	err := c.genericCall(ctx, http.MethodPost, "/transactions/"+id.String()+"/resolve", &resolveRequest{Decision: decision}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Refund(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	out := &Transaction{}
	if err := c.genericCall(ctx, http.MethodPost, "/transactions/"+id.String()+"/refund", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

type RemoteError struct {
	ResponseBody string
	StatusCode   int
}

func NewRemoteError(responseBody string, statusCode int) *RemoteError {
	return &RemoteError{ResponseBody: responseBody, StatusCode: statusCode}
}

func (e *RemoteError) Error() string {
	msg := struct {
		Error string `json:"error"`
	}{}
	if err := json.Unmarshal([]byte(e.ResponseBody), &msg); err == nil && msg.Error != "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, msg.Error)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.ResponseBody)
}

// IsStatus reports whether err is a RemoteError with the status code
func IsStatus(err error, statusCode int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == statusCode
}

func (c *Client) genericCall(ctx context.Context, method, endpoint string, in interface{}, out interface{}) error {
	l := c.logger.With().Str("http_method", method).Str("endpoint", endpoint).Logger()
	ctx = l.WithContext(ctx)

	// client errors are the caller's fault and must not open the breaker
	var remoteErr *RemoteError

	_, err := c.breaker.Execute(func() (interface{}, error) {
		res, err := c.request(ctx, method, endpoint, in)
		if err != nil {
			return nil, err
		}

		if res.StatusCode >= 400 {
			resBody := readString(res.Body)
			l.Debug().
				Int("http_status", res.StatusCode).
				Str("http_body", resBody).
				Msg("Service responded with error")
			remoteErr = NewRemoteError(resBody, res.StatusCode)
			if res.StatusCode >= 500 {
				return nil, remoteErr
			}
			return nil, nil
		}

		if err := readJSON(res.Body, out); err != nil {
			return nil, fmt.Errorf("body read: %w", err)
		}

		return nil, nil
	})
	if remoteErr != nil {
		return remoteErr
	}
	if err != nil {
		l.Error().Err(err).Msg("Service request failed")
		return fmt.Errorf("request: %w", err)
	}

	return nil
}

func (c *Client) request(
	ctx context.Context,
	method string,
	endpoint string,
	bodyParams interface{},
) (*http.Response, error) {
	fullURL := c.apiURL + endpoint
	l := zerolog.Ctx(ctx).With().
		Str("url", fullURL).
		Logger()

	var body *bytes.Reader
	if bodyParams != nil {
		rawJSON, err := json.Marshal(bodyParams)
		if err != nil {
			return nil, fmt.Errorf("json encode: %w", err)
		}
		l.Debug().Str("request_body", string(rawJSON)).Msg("Doing request")
		body = bytes.NewReader(rawJSON)
	} else {
		l.Debug().Msg("Doing request")
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	return res, nil
}
