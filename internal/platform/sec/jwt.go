// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Sentinel Errors

var (
	// ErrTokenExpired indicates a structurally valid token whose embedded
	// expiry is in the past. Distinguished from ErrTokenInvalid so callers
	// can tell a stale session apart from a forged or corrupted token.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid indicates a token that failed signature verification
	// or carries a malformed payload.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the AdminID and display name directly inside the JWT, the
// session gate can identify the caller without an extra query in the common
// path. The gate still resolves the identity row on every protected request
// to reject tokens whose identity was deleted after issuance.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	AdminID string `json:"uid"`
	Name    string `json:"nam"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// Tokens are stateless: there is no server-side session store and no way to
// revoke a token before its natural expiry. This is a deliberate simplicity
// trade-off, not a gap to fix.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new TokenService signing with the given shared secret.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a new signed bearer token for an admin identity.
//
// The embedded expiry is the configured TTL (24h) from now. No side effects
// beyond cryptographic computation.
func (service *TokenService) Issue(adminID, name string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		AdminID: adminID,
		Name:    name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string.
//
// # Returns
//   - The embedded claims when the token verifies and is not expired.
//   - [ErrTokenExpired] when the signature is fine but the expiry has passed.
//   - [ErrTokenInvalid] for every other failure (bad signature, wrong
//     algorithm, malformed payload).
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
