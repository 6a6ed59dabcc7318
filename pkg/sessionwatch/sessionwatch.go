// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package sessionwatch implements a client-side session watchdog for the admin
dashboard: an expiry-aware session object with a scheduled check.

On each tick the watchdog reads the locally held bearer token, decodes it
WITHOUT cryptographic verification, and evicts the local session proactively
when the token is missing, malformed, or past its embedded expiry.

# Not a Security Boundary

The unverified decode trusts the locally held copy of the token. This is a
UX convenience only — it spares the user a failed request after their session
lapses. The actual boundary is the server's session gate, which re-verifies
the signature on every request.
*/
package sessionwatch

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Reason describes why the watchdog evicted the local session.
type Reason string

const (
	// ReasonMissing means no token was held locally.
	ReasonMissing Reason = "missing"

	// ReasonMalformed means the held token could not be decoded.
	ReasonMalformed Reason = "malformed"

	// ReasonExpired means the token's embedded expiry is in the past.
	ReasonExpired Reason = "expired"
)

// DefaultInterval is how often the scheduled check runs.
const DefaultInterval = 30 * time.Second

// Config wires the watchdog to its host application.
type Config struct {
	// TokenSource returns the locally stored token, or "" when logged out.
	TokenSource func() string

	// OnEvict is invoked when the local session must be discarded. The host
	// clears its identity state and redirects to login.
	OnEvict func(Reason)

	// Skip reports whether the current view is public/unauthenticated, in
	// which case the tick is a no-op. Optional.
	Skip func() bool

	// Interval between checks. Defaults to [DefaultInterval].
	Interval time.Duration
}

// Watchdog periodically validates the locally held session token.
type Watchdog struct {
	cfg Config

	// now is a clock hook for deterministic tests.
	now func() time.Time
}

// New constructs a [Watchdog] from the given config.
func New(cfg Config) (*Watchdog, error) {
	if cfg.TokenSource == nil {
		return nil, errors.New("sessionwatch: TokenSource is required")
	}
	if cfg.OnEvict == nil {
		return nil, errors.New("sessionwatch: OnEvict is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}

	return &Watchdog{cfg: cfg, now: time.Now}, nil
}

// Start runs the scheduled check until ctx is cancelled.
//
// It performs one check immediately, then ticks on the configured interval.
// The call blocks; run it in its own goroutine.
func (w *Watchdog) Start(ctx context.Context) {
	w.Check()

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Check()
		case <-ctx.Done():
			return
		}
	}
}

// Check performs a single validation tick.
//
// # Returns
//   - (reason, true) when the session was evicted this tick.
//   - ("", false) when the session is still valid or the view is public.
func (w *Watchdog) Check() (Reason, bool) {
	if w.cfg.Skip != nil && w.cfg.Skip() {
		return "", false
	}

	token := w.cfg.TokenSource()
	if token == "" {
		w.cfg.OnEvict(ReasonMissing)
		return ReasonMissing, true
	}

	expiry, err := Expiry(token)
	if err != nil {
		w.cfg.OnEvict(ReasonMalformed)
		return ReasonMalformed, true
	}

	if expiry.Before(w.now()) {
		w.cfg.OnEvict(ReasonExpired)
		return ReasonExpired, true
	}

	return "", false
}

// Expiry decodes a JWT without verifying its signature and returns the
// embedded expiry time.
//
// An error is returned when the token cannot be decoded or carries no
// expiry claim.
func Expiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}

	// ParseUnverified deliberately skips the signature check; see the
	// package comment for why this is acceptable here.
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("sessionwatch: token carries no expiry claim")
	}

	return claims.ExpiresAt.Time, nil
}
