// Package workflow coordinates the user workflows of the client against the
// ledger: login, the three modal workflows (register a name, grant,
// transfer) and the refresh of the local state.
//
// At most one modal workflow is open at a time. Every ledger call made by the
// coordinator raises the Processing flag until it settles, success or failure.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/etnz/dce"
	"github.com/etnz/dce/account"
	"github.com/etnz/dce/renderer"
	"go.uber.org/zap"
)

// Snapshot is an immutable view of the coordinator, for display.
type Snapshot struct {
	LoggedIn   bool
	State      State
	Processing bool
	Notice     string // last message for the user, inline in the open workflow if any
	Account    account.View
	Transfers  *renderer.TransferTable // nil until the first refresh
}

// Coordinator drives the client session.
type Coordinator struct {
	auth  Authenticator
	dial  Dialer
	store *account.Store
	log   *zap.Logger

	mu         sync.Mutex // never held during a ledger call
	ledger     Ledger     // nil until authenticated, and after the session expired
	state      State
	inflight   int
	submitting bool
	notice     string
	transfers  *renderer.TransferTable
	observers  []func(Snapshot)
}

// New returns a coordinator. A nil store is replaced by an empty one.
func New(auth Authenticator, dial Dialer, store *account.Store, log *zap.Logger) *Coordinator {
	if store == nil {
		store = new(account.Store)
	}
	return &Coordinator{auth: auth, dial: dial, store: store, log: log.Named("workflow")}
}

// Subscribe registers fn to be called with a new snapshot after every change.
//
// fn is called from the goroutine that made the change, possibly
// concurrently with other calls when a refresh is running.
func (c *Coordinator) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Snapshot returns the current state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Coordinator) snapshot() Snapshot {
	return Snapshot{
		LoggedIn:   c.ledger != nil && c.store.Loaded(),
		State:      c.state,
		Processing: c.inflight > 0,
		Notice:     c.notice,
		Account:    c.store.View(),
		Transfers:  c.transfers,
	}
}

func (c *Coordinator) notify() {
	c.mu.Lock()
	s := c.snapshot()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()
	for _, fn := range observers {
		fn(s)
	}
}

// report sets the user notice.
func (c *Coordinator) report(msg string) {
	c.mu.Lock()
	c.notice = msg
	c.mu.Unlock()
	c.notify()
}

// track runs one ledger call with the Processing flag raised.
func (c *Coordinator) track(op string, call func() error) error {
	c.mu.Lock()
	c.inflight++
	c.mu.Unlock()
	c.notify()

	defer func() {
		c.mu.Lock()
		c.inflight--
		c.mu.Unlock()
		c.notify()
	}()

	err := call()
	if err == nil {
		return nil
	}
	c.log.Warn("ledger call failed", zap.String("op", op), zap.Error(err))
	if errors.Is(err, dce.ErrAuthentication) {
		// the ledger no longer accepts this identity: the session is over.
		c.mu.Lock()
		c.ledger = nil
		c.state = Idle
		c.notice = Notice(err)
		c.mu.Unlock()
	}
	return err
}

// Login authenticates the user and loads the account.
//
// If the account has no display name yet, the name registration workflow
// is opened right away.
func (c *Coordinator) Login(ctx context.Context) error {
	id, err := c.auth.Authenticate(ctx)
	if err != nil {
		if !errors.Is(err, dce.ErrAuthentication) {
			err = fmt.Errorf("%w: %w", dce.ErrAuthentication, err)
		}
		c.report(Notice(err))
		return err
	}

	// the new ledger is only installed along with the account it logged on.
	l := c.dial(id)
	var acct dce.Account
	err = c.track("logon", func() (err error) {
		acct, err = l.Logon(ctx)
		return err
	})
	if err != nil {
		c.report(Notice(err))
		return err
	}
	c.mu.Lock()
	c.ledger = l
	c.store.SetFromLogon(acct)
	c.mu.Unlock()
	c.log.Info("logged on", zap.Stringer("principal", acct.ID), zap.String("name", acct.DisplayName))

	if acct.DisplayName == "" {
		c.log.Info("no display name, opening registration")
		c.Open(AwaitingName)
		return nil
	}
	c.notify()
	return nil
}

// Open opens the modal workflow s.
//
// It only succeeds from Idle once logged in: while another workflow is open
// the request is ignored and false is returned.
func (c *Coordinator) Open(s State) bool {
	if !s.modal() {
		return false
	}
	c.mu.Lock()
	current := c.state
	if current != Idle || c.ledger == nil || !c.store.Loaded() {
		c.mu.Unlock()
		c.log.Debug("open ignored", zap.Stringer("requested", s), zap.Stringer("current", current))
		return false
	}
	c.state = s
	c.notice = ""
	c.mu.Unlock()
	c.notify()
	return true
}

// Cancel closes the workflow s without contacting the ledger.
// It returns false if s was not open.
func (c *Coordinator) Cancel(s State) bool {
	if !s.modal() {
		return false
	}
	c.mu.Lock()
	if c.state != s {
		c.mu.Unlock()
		return false
	}
	c.state = Idle
	c.notice = ""
	c.mu.Unlock()
	c.notify()
	return true
}

// Close closes the workflow s and refreshes the local state from the ledger.
// Closing a workflow that is not open does nothing.
func (c *Coordinator) Close(ctx context.Context, s State) error {
	if !c.Cancel(s) {
		return nil
	}
	errs := []error{c.Refresh(ctx)}
	if s == AwaitingName {
		if err := c.refreshName(ctx); err != nil {
			c.report(Notice(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Refresh reloads the balance and the transfer history.
//
// Both requests run concurrently and each one only updates its own part of
// the state: one may succeed while the other fails.
func (c *Coordinator) Refresh(ctx context.Context) error {
	l, id, err := c.session()
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	var balanceErr, transfersErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		balanceErr = c.refreshBalance(ctx, l, id)
	}()
	go func() {
		defer wg.Done()
		transfersErr = c.refreshTransfers(ctx, l)
	}()
	wg.Wait()

	if err := errors.Join(balanceErr, transfersErr); err != nil {
		c.report(Notice(err))
		return err
	}
	c.report("")
	return nil
}

func (c *Coordinator) session() (Ledger, dce.Identity, error) {
	acct, loaded := c.store.Account()
	c.mu.Lock()
	l := c.ledger
	c.mu.Unlock()
	if l == nil || !loaded {
		return nil, "", fmt.Errorf("not logged in: %w", dce.ErrNotLoaded)
	}
	return l, acct.ID, nil
}

func (c *Coordinator) refreshBalance(ctx context.Context, l Ledger, id dce.Identity) error {
	var b dce.Balance
	err := c.track("getBalance", func() (err error) {
		b, err = l.GetBalance(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	if err := c.store.SetBalance(b); err != nil {
		return err
	}
	c.notify()
	return nil
}

func (c *Coordinator) refreshTransfers(ctx context.Context, l Ledger) error {
	var records []dce.TransferRecord
	err := c.track("showTransfers", func() (err error) {
		records, err = l.ShowTransfers(ctx)
		return err
	})
	if err != nil {
		return err
	}
	table := renderer.Transfers(records)
	c.mu.Lock()
	c.transfers = table
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *Coordinator) refreshName(ctx context.Context) error {
	l, _, err := c.session()
	if err != nil {
		return err
	}
	var name string
	err = c.track("getName", func() (err error) {
		name, err = l.GetName(ctx)
		return err
	})
	if err != nil {
		return err
	}
	if err := c.store.SetDisplayName(name); err != nil {
		return err
	}
	c.notify()
	return nil
}

// Form is the grant or transfer form, as typed by the user.
type Form struct {
	To     string // recipient principal
	Orange string
	Green  string
	Reason string
}

// parse validates the form. Amounts must be non-negative whole numbers.
func (f Form) parse() (to dce.Identity, amounts dce.Amounts, reason string, err error) {
	to = dce.Identity(strings.TrimSpace(f.To))
	if to == "" {
		return "", amounts, "", fmt.Errorf("%w: recipient is required", dce.ErrValidation)
	}
	if amounts.Orange, err = dce.ParseUnits(f.Orange); err != nil {
		return "", amounts, "", fmt.Errorf("orange: %w", err)
	}
	if amounts.Green, err = dce.ParseUnits(f.Green); err != nil {
		return "", amounts, "", fmt.Errorf("green: %w", err)
	}
	reason = strings.TrimSpace(f.Reason)
	if reason == "" {
		return "", amounts, "", fmt.Errorf("%w: description is required", dce.ErrValidation)
	}
	return to, amounts, reason, nil
}

// SubmitName registers the display name, and the email when not empty.
// On success the registration workflow is closed.
func (c *Coordinator) SubmitName(ctx context.Context, name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return c.reject(AwaitingName, fmt.Errorf("%w: name is required", dce.ErrValidation))
	}
	return c.submit(ctx, AwaitingName, "register", func(l Ledger) error {
		if err := l.SetName(ctx, name); err != nil {
			return err
		}
		if email == "" {
			return nil
		}
		return l.ClaimEmail(ctx, "", email)
	})
}

// SubmitGrant grants the form amounts. On success the grant workflow is closed.
func (c *Coordinator) SubmitGrant(ctx context.Context, f Form) error {
	to, amounts, reason, err := f.parse()
	if err != nil {
		return c.reject(AwaitingGrant, err)
	}
	return c.submit(ctx, AwaitingGrant, "grant", func(l Ledger) error {
		return l.Grant(ctx, to, amounts, reason)
	})
}

// SubmitTransfer transfers the form amounts. On success the transfer
// workflow is closed.
//
// Amounts that are not non-negative whole numbers are rejected before any
// request is made.
func (c *Coordinator) SubmitTransfer(ctx context.Context, f Form) error {
	to, amounts, reason, err := f.parse()
	if err != nil {
		return c.reject(AwaitingTransfer, err)
	}
	return c.submit(ctx, AwaitingTransfer, "transfer", func(l Ledger) error {
		return l.Transfer(ctx, to, amounts, reason)
	})
}

// reject reports an invalid form inline, the workflow stays open.
func (c *Coordinator) reject(s State, err error) error {
	c.mu.Lock()
	if c.state != s {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", dce.ErrNoWorkflow, s)
	}
	c.notice = Notice(err)
	c.mu.Unlock()
	c.notify()
	return err
}

// submit runs the mutation of workflow s.
//
// A failure keeps the workflow open with an inline notice. A success closes
// it and returns nil even when the refresh that follows fails. When the workflow was cancelled while the request was in flight, the
// outcome is only logged and no workflow is reopened.
func (c *Coordinator) submit(ctx context.Context, s State, op string, call func(Ledger) error) error {
	c.mu.Lock()
	if c.state != s {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", dce.ErrNoWorkflow, s)
	}
	if c.submitting {
		c.mu.Unlock()
		return dce.ErrBusy
	}
	c.submitting = true
	c.notice = ""
	l := c.ledger
	c.mu.Unlock()

	err := c.track(op, func() error { return call(l) })

	c.mu.Lock()
	c.submitting = false
	stale := c.state != s
	if err != nil && !stale {
		c.notice = Notice(err)
	}
	c.mu.Unlock()

	switch {
	case stale && err != nil:
		c.log.Info("workflow closed before its submission failed", zap.Stringer("workflow", s), zap.Error(err))
		c.notify()
		return err
	case stale:
		c.log.Info("workflow closed before its submission succeeded", zap.Stringer("workflow", s))
		c.refreshAfter(op, c.Refresh(ctx))
		return nil
	case err != nil:
		c.notify()
		return err
	}
	c.refreshAfter(op, c.Close(ctx, s))
	return nil
}

// refreshAfter logs the failed refresh following a successful mutation.
// The mutation is done: its outcome must not be reported as a failure, the
// refresh failure is left in the notice.
func (c *Coordinator) refreshAfter(op string, err error) {
	if err != nil {
		c.log.Warn("refresh after a successful mutation failed", zap.String("op", op), zap.Error(err))
	}
}
