// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/platform/sec"
)

const testIssuer = "portfolio.test"

/*
TestTokenService_RoundTrip issues a token and verifies its claims survive.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", testIssuer, time.Hour)
	require.NoError(t, err)

	token, err := service.Issue("admin-123", "Abhishek")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "admin-123", claims.AdminID)
	assert.Equal(t, "Abhishek", claims.Name)
	assert.Equal(t, "admin-123", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

/*
TestTokenService_Expired checks that a stale token maps to ErrTokenExpired.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", testIssuer, -time.Minute)
	require.NoError(t, err)

	token, err := service.Issue("admin-123", "Abhishek")
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_Invalid covers forged and malformed tokens.
*/
func TestTokenService_Invalid(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", testIssuer, time.Hour)
	require.NoError(t, err)

	t.Run("wrong_secret", func(t *testing.T) {
		forger, err := sec.NewTokenService("another-secret", testIssuer, time.Hour)
		require.NoError(t, err)

		forged, err := forger.Issue("admin-123", "Abhishek")
		require.NoError(t, err)

		_, err = service.Verify(forged)
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("garbage_token", func(t *testing.T) {
		_, err := service.Verify("not.a.jwt")
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("empty_token", func(t *testing.T) {
		_, err := service.Verify("")
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})
}

/*
TestNewTokenService rejects an empty signing secret.
*/
func TestNewTokenService(t *testing.T) {
	_, err := sec.NewTokenService("", testIssuer, time.Hour)
	assert.Error(t, err)
}
