package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
)

// TokenProvider is a non-interactive provider returning a token obtained
// out of band.
type TokenProvider string

// Login returns the token.
func (t TokenProvider) Login(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if t == "" {
		return "", errors.New("no token configured")
	}
	return string(t), nil
}

// BrowserProvider logs in through the identity provider's web page.
//
// It listens on a loopback address, prints the provider URL with a
// redirect_uri pointing back to it, and waits for the provider to redirect
// the browser to
//
//	<redirect_uri>?state=<state>&token=<signed token>
//
// or with an "error" parameter instead of "token" when the user gave up.
type BrowserProvider struct {
	Endpoint string    // identity provider login page
	Addr     string    // callback listen address, defaults to 127.0.0.1:0
	Out      io.Writer // where the login URL is printed, defaults to os.Stderr
}

type callback struct {
	token  string
	reason string
}

// Login implements Provider.
func (p *BrowserProvider) Login(ctx context.Context) (string, error) {
	addr := p.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	out := p.Out
	if out == nil {
		out = os.Stderr
	}
	loginURL, err := url.Parse(p.Endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid identity provider %q: %w", p.Endpoint, err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("cannot listen for the provider callback: %w", err)
	}

	state := uuid.NewString()
	results := make(chan callback, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "unknown login attempt", http.StatusBadRequest)
			return
		}
		select {
		case results <- callback{token: q.Get("token"), reason: q.Get("error")}:
			fmt.Fprintln(w, "Login complete, you can close this window.")
		default:
			http.Error(w, "login already completed", http.StatusConflict)
		}
	})
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go srv.Serve(ln)
	defer srv.Close()

	q := loginURL.Query()
	q.Set("redirect_uri", "http://"+ln.Addr().String()+"/callback")
	q.Set("state", state)
	loginURL.RawQuery = q.Encode()
	fmt.Fprintf(out, "Open the following URL to log in:\n\n  %s\n\n", loginURL)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("login abandoned: %w", ctx.Err())
	case res := <-results:
		if res.reason != "" {
			return "", fmt.Errorf("identity provider: %s", res.reason)
		}
		return res.token, nil
	}
}
