// Package session owns the authentication handshake with the identity
// provider and the signed identity it produces.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/etnz/dce"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Identity is the signed identity produced by a successful handshake.
type Identity struct {
	Principal dce.Identity
	Token     string    // signed token presented to the ledger
	Expiry    time.Time // zero when the token carries no expiry
}

// Channel returns a transport that authenticates every request with this
// identity. A nil base uses http.DefaultTransport.
func (id Identity) Channel(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &bearer{base: base, token: id.Token}
}

type bearer struct {
	base  http.RoundTripper
	token string
}

func (b *bearer) RoundTrip(req *http.Request) (*http.Response, error) {
	// a RoundTripper must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(r)
}

// Provider runs the interactive part of the login with an identity provider.
//
// Login blocks until the provider answers, and returns the signed token it
// issued. It must return when ctx is done.
type Provider interface {
	Login(ctx context.Context) (token string, err error)
}

// Option configures a Manager.
type Option func(*Manager)

// WithKeyfunc makes the manager verify token signatures with k.
// Without it tokens are only decoded, the ledger being the final verifier.
func WithKeyfunc(k jwt.Keyfunc) Option {
	return func(m *Manager) { m.keyfunc = k }
}

// Manager authenticates the user and holds the resulting identity.
type Manager struct {
	provider Provider
	keyfunc  jwt.Keyfunc
	log      *zap.Logger

	mu      sync.Mutex
	current *Identity
}

// NewManager returns a manager logging in through provider.
func NewManager(provider Provider, log *zap.Logger, options ...Option) *Manager {
	m := &Manager{provider: provider, log: log.Named("session")}
	for _, option := range options {
		option(m)
	}
	return m
}

// Authenticate runs the provider handshake and returns the signed identity.
//
// There is no timeout: it waits for the provider as long as ctx allows.
// Every failure wraps dce.ErrAuthentication. Concurrent calls are allowed,
// the last one to settle sets the current identity.
func (m *Manager) Authenticate(ctx context.Context) (Identity, error) {
	token, err := m.provider.Login(ctx)
	if err != nil {
		m.log.Warn("login abandoned", zap.Error(err))
		return Identity{}, fmt.Errorf("%w: %w", dce.ErrAuthentication, err)
	}
	if token == "" {
		return Identity{}, fmt.Errorf("%w: provider returned no identity", dce.ErrAuthentication)
	}
	id, err := m.parse(token)
	if err != nil {
		m.log.Warn("invalid identity", zap.Error(err))
		return Identity{}, fmt.Errorf("%w: %w", dce.ErrAuthentication, err)
	}

	m.mu.Lock()
	m.current = &id
	m.mu.Unlock()

	m.log.Info("authenticated", zap.Stringer("principal", id.Principal), zap.Time("expiry", id.Expiry))
	return id, nil
}

// Current returns the identity of the last successful Authenticate.
func (m *Manager) Current() (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Identity{}, false
	}
	return *m.current, true
}

func (m *Manager) parse(token string) (Identity, error) {
	claims := &jwt.RegisteredClaims{}
	if m.keyfunc != nil {
		if _, err := jwt.ParseWithClaims(token, claims, m.keyfunc); err != nil {
			return Identity{}, fmt.Errorf("cannot verify token: %w", err)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return Identity{}, fmt.Errorf("cannot decode token: %w", err)
		}
	}

	if claims.Subject == "" {
		return Identity{}, errors.New("token has no principal")
	}
	id := Identity{Principal: dce.Identity(claims.Subject), Token: token}
	if claims.ExpiresAt != nil {
		id.Expiry = claims.ExpiresAt.Time
		if id.Expiry.Before(time.Now()) {
			return Identity{}, fmt.Errorf("token expired at %s", id.Expiry.Format(time.RFC3339))
		}
	}
	return id, nil
}
