package workflow

import (
	"errors"

	"github.com/etnz/dce"
)

// Notice turns an error into the message shown to the user.
func Notice(err error) string {
	switch {
	case errors.Is(err, dce.ErrAuthentication):
		return "Your session is no longer valid, please log in again."
	case errors.Is(err, dce.ErrTransport), errors.Is(err, dce.ErrServiceUnavailable):
		return "The ledger could not be reached, please try again."
	}
	var e *dce.Error
	if !errors.As(err, &e) {
		// raised by the client itself, e.g. an invalid form.
		return err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return "Failed to record entry. Please try again."
}
