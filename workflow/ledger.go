package workflow

import (
	"context"

	"github.com/etnz/dce"
	"github.com/etnz/dce/session"
)

//go:generate mockgen -destination=mock_ledger_test.go -package=workflow . Ledger

// Ledger is the ledger facade as driven by the coordinator.
// It is implemented by *ledger.Client.
type Ledger interface {
	Logon(ctx context.Context) (dce.Account, error)
	GetBalance(ctx context.Context, id dce.Identity) (dce.Balance, error)
	GetName(ctx context.Context) (string, error)
	SetName(ctx context.Context, name string) error
	ClaimEmail(ctx context.Context, token, email string) error
	Grant(ctx context.Context, to dce.Identity, amounts dce.Amounts, reason string) error
	Transfer(ctx context.Context, to dce.Identity, amounts dce.Amounts, reason string) error
	ShowTransfers(ctx context.Context) ([]dce.TransferRecord, error)
}

// Authenticator runs the identity provider handshake.
// It is implemented by *session.Manager.
type Authenticator interface {
	Authenticate(ctx context.Context) (session.Identity, error)
}

// Dialer builds the ledger facade for an authenticated identity.
type Dialer func(id session.Identity) Ledger
