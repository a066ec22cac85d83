package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cenkalti/backoff/v4"
	"github.com/etnz/dce"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RetryConfig configures the retries of idempotent reads.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig provides sensible defaults for retries.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          5 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       30 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// request describes one call to the ledger service.
type request struct {
	op         string // operation name, for errors and logs
	method     string
	path       string
	body       any
	idempotent bool  // reads are retried, mutations never
	reject     error // kind reported when the service refuses the request
	offline    error // kind reported when the service cannot be reached
}

// reply is the last answer received from the service.
type reply struct {
	status int
	body   []byte
}

// do executes r and decodes a successful answer into out (when not nil).
//
// Failures are reported as *dce.Error.
func (c *Client) do(ctx context.Context, r request, out any) error {
	start := time.Now()
	log := c.log.With(zap.String("op", r.op), zap.String("method", r.method), zap.String("path", r.path))

	var payload []byte
	if r.body != nil {
		var err error
		if payload, err = json.Marshal(r.body); err != nil {
			return &dce.Error{Op: r.op, Kind: dce.ErrValidation, Err: fmt.Errorf("cannot encode request: %w", err)}
		}
	}
	// the same key for every attempt of a mutation.
	key := uuid.NewString()

	var rep reply
	attempt := func() error {
		rep = reply{}
		req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("X-Request-Id", uuid.NewString())
		if !r.idempotent {
			req.Header.Set("Idempotency-Key", key)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cannot read response body: %w", err)
		}
		rep = reply{status: resp.StatusCode, body: body}
		if slices.Contains(c.retry.RetryableStatusCodes, resp.StatusCode) {
			return fmt.Errorf("retryable status code: %d", resp.StatusCode)
		}
		return nil
	}

	var err error
	if r.idempotent && c.retry.MaxRetries > 0 {
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retry.InitialInterval
		expBackoff.MaxInterval = c.retry.MaxInterval
		expBackoff.Multiplier = c.retry.Multiplier
		expBackoff.MaxElapsedTime = c.retry.MaxElapsedTime
		err = backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retry.MaxRetries)), ctx))
	} else {
		err = attempt()
	}
	duration := time.Since(start)

	if err != nil && rep.status == 0 {
		// the service never answered.
		log.Warn("ledger request failed", zap.Error(err), zap.Duration("duration", duration))
		cause := fmt.Errorf("%w: %w", dce.ErrTransport, err)
		kind := dce.ErrTransport
		if r.offline != nil {
			kind = r.offline
		}
		return &dce.Error{Op: r.op, Kind: kind, Err: cause}
	}

	if rep.status >= 200 && rep.status < 300 {
		log.Debug("ledger request successful", zap.Int("status", rep.status), zap.Duration("duration", duration))
		if out == nil || len(bytes.TrimSpace(rep.body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(rep.body, out); err != nil {
			return &dce.Error{Op: r.op, Kind: dce.ErrTransport, Status: rep.status, Err: fmt.Errorf("cannot decode response: %w", err)}
		}
		return nil
	}

	e := &dce.Error{Op: r.op, Status: rep.status, Message: serviceMessage(rep.body)}
	switch {
	case rep.status == http.StatusUnauthorized || rep.status == http.StatusForbidden:
		e.Kind = dce.ErrAuthentication
	case rep.status >= 500 || slices.Contains(c.retry.RetryableStatusCodes, rep.status):
		e.Kind = dce.ErrServiceUnavailable
	case r.reject != nil:
		e.Kind = r.reject
	default:
		e.Kind = dce.ErrRejected
	}
	log.Warn("ledger error response",
		zap.Int("status", rep.status),
		zap.String("message", e.Message),
		zap.Duration("duration", duration))
	return e
}

// errorPaths are the places where services usually put their error message.
var errorPaths = []string{"$.error.message", "$.message", "$.error", "$.detail"}

// serviceMessage extracts a human readable message from an error answer.
func serviceMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		// not json, plain text answers are messages already.
		return strings.TrimSpace(string(body))
	}
	if s, ok := v.(string); ok {
		return s
	}
	for _, path := range errorPaths {
		m, err := jsonpath.Get(path, v)
		if err != nil {
			continue
		}
		if s, ok := m.(string); ok && s != "" {
			return s
		}
	}
	return ""
}
