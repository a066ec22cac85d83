package dce

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every failure reported by the client matches one of them with
// errors.Is.
var (
	// ErrAuthentication reports an abandoned or failed identity provider
	// handshake, or credentials refused by the ledger. The user must log in
	// again.
	ErrAuthentication = errors.New("authentication failed")
	// ErrTransport reports a network or channel failure. It is retryable.
	ErrTransport = errors.New("transport failure")
	// ErrServiceUnavailable reports a ledger service that could not serve
	// the request.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrValidation reports a registration field rejected by the ledger or by
	// the client form.
	ErrValidation = errors.New("invalid input")
	// ErrRejected reports a grant or a transfer refused by the ledger, for
	// instance for insufficient funds or an unknown recipient.
	ErrRejected = errors.New("rejected by service")

	ErrInvalidAmount = errors.New("invalid amount")
	ErrNotLoaded     = errors.New("account not loaded")
	ErrNoWorkflow    = errors.New("workflow is not open")
	ErrBusy          = errors.New("a submission is already in flight")
)

// Error is the error returned by ledger operations.
type Error struct {
	Op      string // ledger operation, like "transfer"
	Kind    error  // one of the error kinds above
	Status  int    // HTTP status, 0 when the service never answered
	Message string // message from the service, if any
	Err     error  // underlying cause, possibly nil
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Op, e.Kind)
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap makes both the kind and the cause reachable from errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Message returns the part of err that is worth showing to a user.
//
// It is the service message when the ledger gave one, the error text otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
