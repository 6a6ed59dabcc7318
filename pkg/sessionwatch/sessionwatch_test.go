// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package sessionwatch_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/pkg/sessionwatch"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

/*
TestWatchdog_Check covers the eviction decision for each token state.
*/
func TestWatchdog_Check(t *testing.T) {
	t.Run("valid_token_is_kept", func(t *testing.T) {
		token := signedToken(t, time.Now().Add(time.Hour))

		var evicted []sessionwatch.Reason
		w, err := sessionwatch.New(sessionwatch.Config{
			TokenSource: func() string { return token },
			OnEvict:     func(r sessionwatch.Reason) { evicted = append(evicted, r) },
		})
		require.NoError(t, err)

		reason, gone := w.Check()
		assert.False(t, gone)
		assert.Empty(t, reason)
		assert.Empty(t, evicted)
	})

	t.Run("missing_token_evicts", func(t *testing.T) {
		var got sessionwatch.Reason
		w, err := sessionwatch.New(sessionwatch.Config{
			TokenSource: func() string { return "" },
			OnEvict:     func(r sessionwatch.Reason) { got = r },
		})
		require.NoError(t, err)

		reason, gone := w.Check()
		assert.True(t, gone)
		assert.Equal(t, sessionwatch.ReasonMissing, reason)
		assert.Equal(t, sessionwatch.ReasonMissing, got)
	})

	t.Run("malformed_token_evicts", func(t *testing.T) {
		var got sessionwatch.Reason
		w, err := sessionwatch.New(sessionwatch.Config{
			TokenSource: func() string { return "not-a-jwt" },
			OnEvict:     func(r sessionwatch.Reason) { got = r },
		})
		require.NoError(t, err)

		_, gone := w.Check()
		assert.True(t, gone)
		assert.Equal(t, sessionwatch.ReasonMalformed, got)
	})

	t.Run("expired_token_evicts", func(t *testing.T) {
		token := signedToken(t, time.Now().Add(-time.Minute))

		var got sessionwatch.Reason
		w, err := sessionwatch.New(sessionwatch.Config{
			TokenSource: func() string { return token },
			OnEvict:     func(r sessionwatch.Reason) { got = r },
		})
		require.NoError(t, err)

		_, gone := w.Check()
		assert.True(t, gone)
		assert.Equal(t, sessionwatch.ReasonExpired, got)
	})

	t.Run("public_view_skips_check", func(t *testing.T) {
		w, err := sessionwatch.New(sessionwatch.Config{
			TokenSource: func() string { return "" },
			OnEvict:     func(sessionwatch.Reason) { t.Fatal("must not evict on public views") },
			Skip:        func() bool { return true },
		})
		require.NoError(t, err)

		_, gone := w.Check()
		assert.False(t, gone)
	})
}

/*
TestNew rejects configs that leave the watchdog unable to act.
*/
func TestNew(t *testing.T) {
	_, err := sessionwatch.New(sessionwatch.Config{
		OnEvict: func(sessionwatch.Reason) {},
	})
	assert.Error(t, err)

	_, err = sessionwatch.New(sessionwatch.Config{
		TokenSource: func() string { return "" },
	})
	assert.Error(t, err)
}

/*
TestExpiry checks the unverified expiry decode.
*/
func TestExpiry(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		token := signedToken(t, exp)

		got, err := sessionwatch.Expiry(token)
		require.NoError(t, err)
		assert.True(t, got.Equal(exp))
	})

	t.Run("no_expiry_claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: "admin",
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = sessionwatch.Expiry(token)
		assert.Error(t, err)
	})
}
