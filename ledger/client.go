// Package ledger is the typed facade over the remote ledger service.
//
// It is the only package talking to the service. Every method maps to one
// remote capability and reports failures as *dce.Error, whose kind tells the
// caller how to surface it.
package ledger

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/etnz/dce"
	"github.com/etnz/dce/session"
	"go.uber.org/zap"
)

// Client is the ledger service facade for one authenticated identity.
type Client struct {
	baseURL string
	http    *http.Client
	retry   *RetryConfig
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout of each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http.Timeout = timeout }
}

// WithRetryConfig sets the retry policy of idempotent reads.
func WithRetryConfig(config *RetryConfig) Option {
	return func(c *Client) { c.retry = config }
}

// WithTransport sets the transport the authenticated channel is built upon.
func WithTransport(base http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = base }
}

// New returns a facade for the ledger at baseURL, authenticated as id.
func New(baseURL string, id session.Identity, log *zap.Logger, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		retry:   DefaultRetryConfig(),
		log:     log.Named("ledger").With(zap.Stringer("principal", id.Principal)),
	}
	for _, option := range options {
		option(c)
	}
	if c.retry == nil {
		c.retry = &RetryConfig{}
	}
	// every request goes through the identity's authenticated channel.
	c.http.Transport = id.Channel(c.http.Transport)
	return c
}

// Logon exchanges the authenticated channel for the caller's account.
//
// It fails with dce.ErrServiceUnavailable when the ledger cannot be reached.
func (c *Client) Logon(ctx context.Context) (dce.Account, error) {
	var acct dce.Account
	err := c.do(ctx, request{
		op:      "logon",
		method:  http.MethodPost,
		path:    "/logon",
		offline: dce.ErrServiceUnavailable,
	}, &acct)
	return acct, err
}

// GetBalance returns the balance of id. It is a pure read and is retried.
func (c *Client) GetBalance(ctx context.Context, id dce.Identity) (dce.Balance, error) {
	var b dce.Balance
	err := c.do(ctx, request{
		op:         "getBalance",
		method:     http.MethodGet,
		path:       "/balance/" + url.PathEscape(string(id)),
		idempotent: true,
	}, &b)
	return b, err
}

// GetName returns the display name registered for the caller.
func (c *Client) GetName(ctx context.Context) (string, error) {
	var resp struct {
		Name string `json:"name"`
	}
	err := c.do(ctx, request{
		op:         "getName",
		method:     http.MethodGet,
		path:       "/name",
		idempotent: true,
	}, &resp)
	return resp.Name, err
}

// SetName registers the caller's display name.
// A name refused by the service (e.g. already taken) fails with dce.ErrValidation.
func (c *Client) SetName(ctx context.Context, name string) error {
	return c.do(ctx, request{
		op:     "setName",
		method: http.MethodPut,
		path:   "/name",
		body:   map[string]string{"name": name},
		reject: dce.ErrValidation,
	}, nil)
}

// ClaimEmail attaches an email to the caller. token is the verification
// token, empty on the first claim.
func (c *Client) ClaimEmail(ctx context.Context, token, email string) error {
	return c.do(ctx, request{
		op:     "claimEmail",
		method: http.MethodPost,
		path:   "/email",
		body:   map[string]string{"token": token, "email": email},
		reject: dce.ErrValidation,
	}, nil)
}

// movement is the wire form of grants and transfers.
type movement struct {
	To     dce.Identity `json:"to"`
	Orange dce.Units    `json:"orange"`
	Green  dce.Units    `json:"green"`
	Reason string       `json:"reason"`
}

// Grant grants units to another identity.
// A grant refused by the service fails with dce.ErrRejected.
func (c *Client) Grant(ctx context.Context, to dce.Identity, amounts dce.Amounts, reason string) error {
	return c.do(ctx, request{
		op:     "grant",
		method: http.MethodPost,
		path:   "/grant",
		body:   movement{To: to, Orange: amounts.Orange, Green: amounts.Green, Reason: reason},
		reject: dce.ErrRejected,
	}, nil)
}

// Transfer moves units from the caller to another identity.
//
// Amounts are whole units by construction; the service remains the judge of
// sufficient funds and recipient validity, and refusals fail with
// dce.ErrRejected.
func (c *Client) Transfer(ctx context.Context, to dce.Identity, amounts dce.Amounts, reason string) error {
	if to == "" {
		return &dce.Error{Op: "transfer", Kind: dce.ErrRejected, Message: "recipient is required"}
	}
	return c.do(ctx, request{
		op:     "transfer",
		method: http.MethodPost,
		path:   "/transfer",
		body:   movement{To: to, Orange: amounts.Orange, Green: amounts.Green, Reason: reason},
		reject: dce.ErrRejected,
	}, nil)
}

// ShowTransfers returns the shared transfer history, in the service order.
func (c *Client) ShowTransfers(ctx context.Context) ([]dce.TransferRecord, error) {
	var records []dce.TransferRecord
	err := c.do(ctx, request{
		op:         "showTransfers",
		method:     http.MethodGet,
		path:       "/transfers",
		idempotent: true,
	}, &records)
	if err != nil {
		return nil, fmt.Errorf("cannot list transfers: %w", err)
	}
	return records, nil
}
