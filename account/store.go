// Package account holds the process-local state of the logged in account.
package account

import (
	"fmt"
	"sync"

	"github.com/etnz/dce"
)

// Unknown is displayed in place of values that were never loaded, so that it
// cannot be mistaken for a loaded empty value.
const Unknown = ".."

// Store holds the current account.
//
// It is only mutated from successful ledger responses. SetFromLogon must come
// first; other mutators fail with dce.ErrNotLoaded until then.
// A Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	loaded bool
	acct   dce.Account
}

// SetFromLogon replaces the whole account with a logon snapshot.
func (s *Store) SetFromLogon(a dce.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acct = a
	s.loaded = true
}

// SetBalance updates the balance only.
func (s *Store) SetBalance(b dce.Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return fmt.Errorf("cannot set balance: %w", dce.ErrNotLoaded)
	}
	s.acct.Balance = b
	return nil
}

// SetDisplayName updates the display name only.
func (s *Store) SetDisplayName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return fmt.Errorf("cannot set display name: %w", dce.ErrNotLoaded)
	}
	s.acct.DisplayName = name
	return nil
}

// Account returns the current account, and false if logon never happened.
func (s *Store) Account() (dce.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.acct, s.loaded
}

// Loaded reports whether logon happened.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// View returns a consistent copy of the store for display.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{Loaded: s.loaded, Account: s.acct}
}

// View is a read-only copy of the store.
// Its accessors return Unknown for an account that was never loaded.
type View struct {
	Loaded  bool
	Account dce.Account
}

func (v View) ID() string {
	if !v.Loaded {
		return Unknown
	}
	return v.Account.ID.String()
}

// DisplayName returns the registered name, possibly empty once loaded.
func (v View) DisplayName() string {
	if !v.Loaded {
		return Unknown
	}
	return v.Account.DisplayName
}

func (v View) Orange() string { return v.format(dce.Orange, v.Account.Balance.Orange) }
func (v View) Green() string  { return v.format(dce.Green, v.Account.Balance.Green) }

func (v View) format(c dce.Currency, u dce.Units) string {
	if !v.Loaded {
		return Unknown + " " + c.Grapheme()
	}
	return c.Format(u)
}
