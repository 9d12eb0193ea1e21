// Package auth implements the redirect-based implicit sign-in flow: it
// builds the provider URL, listens on the loopback redirect URI and
// captures the bearer token from the redirected request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/logger"
)

// ErrCancelled is returned when the flow is abandoned before a token arrives.
var ErrCancelled = errors.New("auth cancelled")

// DefaultAuthEndpoint is the provider's implicit-flow authorization URL.
const DefaultAuthEndpoint = "https://accounts.google.com/o/oauth2/v2/auth"

// DefaultScope is requested when no scope is configured.
const DefaultScope = "email profile"

// Options configures a token capture flow.
type Options struct {
	ClientID     string
	RedirectURI  string // loopback URI the provider redirects back to
	AuthEndpoint string // defaults to DefaultAuthEndpoint
	Scope        string // defaults to DefaultScope
	Timeout      time.Duration
}

// Flow is a single-use token capture. Start it, direct the user to
// AuthURL, then wait for the token on the loopback listener.
type Flow struct {
	opts   Options
	logger logger.Logger

	server *http.Server
	tokens chan string
	errs   chan error
}

// NewFlow creates a flow. ClientID and RedirectURI must be set.
func NewFlow(opts Options, log logger.Logger) (*Flow, error) {
	if opts.ClientID == "" {
		return nil, errors.New("auth: client id is required")
	}
	if opts.RedirectURI == "" {
		return nil, errors.New("auth: redirect uri is required")
	}
	if opts.AuthEndpoint == "" {
		opts.AuthEndpoint = DefaultAuthEndpoint
	}
	if opts.Scope == "" {
		opts.Scope = DefaultScope
	}
	return &Flow{
		opts:   opts,
		logger: log,
		tokens: make(chan string, 1),
		errs:   make(chan error, 1),
	}, nil
}

// AuthURL returns the provider URL the user must visit to grant access.
func (f *Flow) AuthURL() string {
	q := url.Values{}
	q.Set("client_id", f.opts.ClientID)
	q.Set("redirect_uri", f.opts.RedirectURI)
	q.Set("response_type", "token")
	q.Set("scope", f.opts.Scope)
	return f.opts.AuthEndpoint + "?" + q.Encode()
}

// Start binds the loopback listener for the redirect URI.
func (f *Flow) Start() error {
	u, err := url.Parse(f.opts.RedirectURI)
	if err != nil {
		return fmt.Errorf("auth: invalid redirect uri: %w", err)
	}

	ln, err := net.Listen("tcp", u.Host)
	if err != nil {
		return fmt.Errorf("auth: failed to listen on %s: %w", u.Host, err)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	r := chi.NewRouter()
	r.Get(path, f.handleRedirect)

	f.server = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := f.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.logger.Error("auth listener failed", logger.Error(err))
		}
	}()

	f.logger.Info("auth flow started", logger.String("redirect_uri", f.opts.RedirectURI))
	return nil
}

// handleRedirect serves two requests: the provider's redirect, whose token
// rides in the URL fragment and never reaches the server, and the bridge
// follow-up that carries the fragment re-encoded as a query string.
func (f *Flow) handleRedirect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if token := q.Get("access_token"); token != "" {
		select {
		case f.tokens <- token:
		default:
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><body><p>Sign-in complete. You can close this window.</p></body></html>")
		return
	}

	if errCode := q.Get("error"); errCode != "" {
		select {
		case f.errs <- fmt.Errorf("auth: provider returned %q", errCode):
		default:
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><body><p>Sign-in failed. You can close this window.</p></body></html>")
		return
	}

	// Re-request with the fragment turned into a query string.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<html><body><script>location.replace(location.href.replace('#', '?'));</script></body></html>`)
}

// Wait blocks until a token arrives, the provider reports an error or ctx
// is done. Cancellation returns ErrCancelled.
func (f *Flow) Wait(ctx context.Context) (string, error) {
	if f.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.opts.Timeout)
		defer cancel()
	}

	select {
	case token := <-f.tokens:
		return token, nil
	case err := <-f.errs:
		return "", err
	case <-ctx.Done():
		return "", ErrCancelled
	}
}

// Close shuts the loopback listener down.
func (f *Flow) Close() error {
	if f.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return f.server.Shutdown(ctx)
}
