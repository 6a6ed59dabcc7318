// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package admins_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/admins"
	"github.com/abhisheknv/portfolio-api/internal/platform/apperr"
	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	byID map[string]*admins.Admin
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*admins.Admin{}}
}

func (f *fakeRepository) Create(_ context.Context, admin *admins.Admin) error {
	f.byID[admin.ID] = admin
	return nil
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*admins.Admin, error) {
	for _, admin := range f.byID {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*admins.Admin, error) {
	admin, ok := f.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, admin *admins.Admin) error {
	if _, ok := f.byID[admin.ID]; !ok {
		return dberr.ErrNotFound
	}
	f.byID[admin.ID] = admin
	return nil
}

func (f *fakeRepository) IdentityExists(_ context.Context, adminID string) (bool, error) {
	_, ok := f.byID[adminID]
	return ok, nil
}

// stubIssuer returns a fixed token for any identity.
type stubIssuer struct{}

func (stubIssuer) Issue(adminID, name string) (string, error) { return "stub-token", nil }

func newService(repo admins.Repository) *admins.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return admins.NewService(repo, stubIssuer{}, logger)
}

/*
TestService_Signup covers enrollment, input validation, and email conflicts.
*/
func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_account_with_hashed_password", func(t *testing.T) {
		service := newService(newFakeRepository())

		admin, err := service.Signup(ctx, admins.SignupInput{
			Name:     "Abhishek",
			Email:    "owner@abhishek.org.in",
			Password: "sufficiently-long",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, admin.ID)
		assert.NotEmpty(t, admin.PasswordHash)
		assert.NotEqual(t, "sufficiently-long", admin.PasswordHash)
	})

	t.Run("accepts_six_char_passwords", func(t *testing.T) {
		service := newService(newFakeRepository())

		admin, err := service.Signup(ctx, admins.SignupInput{
			Name:     "Abhishek",
			Email:    "owner@abhishek.org.in",
			Password: "secret1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, admin.ID)
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		service := newService(newFakeRepository())

		_, err := service.Signup(ctx, admins.SignupInput{
			Name:     "",
			Email:    "not-an-email",
			Password: "short",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Len(t, ae.Details, 3)
	})

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		service := newService(newFakeRepository())

		_, err := service.Signup(ctx, admins.SignupInput{
			Name: "Abhishek", Email: "owner@abhishek.org.in", Password: "sufficiently-long",
		})
		require.NoError(t, err)

		_, err = service.Signup(ctx, admins.SignupInput{
			Name: "Imposter", Email: "owner@abhishek.org.in", Password: "sufficiently-long",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	})
}

/*
TestService_Login checks credential verification and the precise failure
messages the dashboard surfaces.
*/
func TestService_Login(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepository()
	service := newService(repo)

	_, err := service.Signup(ctx, admins.SignupInput{
		Name: "Abhishek", Email: "owner@abhishek.org.in", Password: "sufficiently-long",
	})
	require.NoError(t, err)

	t.Run("valid_credentials_issue_token", func(t *testing.T) {
		session, err := service.Login(ctx, admins.LoginInput{
			Email: "owner@abhishek.org.in", Password: "sufficiently-long",
		})
		require.NoError(t, err)

		assert.Equal(t, "stub-token", session.Token)
		assert.Equal(t, "owner@abhishek.org.in", session.Admin.Email)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(ctx, admins.LoginInput{
			Email: "nobody@abhishek.org.in", Password: "sufficiently-long",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
		assert.Equal(t, "Invalid Email", ae.Message)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(ctx, admins.LoginInput{
			Email: "owner@abhishek.org.in", Password: "wrong-password",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
		assert.Equal(t, "Invalid Password", ae.Message)
	})
}

/*
TestService_UpdateProfile verifies the allow-list overlay semantics.
*/
func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepository()
	service := newService(repo)

	admin, err := service.Signup(ctx, admins.SignupInput{
		Name: "Abhishek", Email: "owner@abhishek.org.in", Password: "sufficiently-long",
	})
	require.NoError(t, err)

	t.Run("overlays_only_sent_fields", func(t *testing.T) {
		contact := "+91 98765 43210"
		updated, err := service.UpdateProfile(ctx, admin.ID, admins.UpdateProfileInput{
			Contact: &contact,
		})
		require.NoError(t, err)

		assert.Equal(t, "Abhishek", updated.Name)
		assert.Equal(t, contact, updated.Contact)
	})

	t.Run("email_change_checks_uniqueness", func(t *testing.T) {
		other, err := service.Signup(ctx, admins.SignupInput{
			Name: "Second", Email: "second@abhishek.org.in", Password: "sufficiently-long",
		})
		require.NoError(t, err)

		taken := "owner@abhishek.org.in"
		_, err = service.UpdateProfile(ctx, other.ID, admins.UpdateProfileInput{Email: &taken})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	})

	t.Run("password_change_rehashes", func(t *testing.T) {
		newPassword := "rotated-secret"
		_, err := service.UpdateProfile(ctx, admin.ID, admins.UpdateProfileInput{
			Password: &newPassword,
		})
		require.NoError(t, err)

		_, err = service.Login(ctx, admins.LoginInput{
			Email: "owner@abhishek.org.in", Password: newPassword,
		})
		require.NoError(t, err)

		_, err = service.Login(ctx, admins.LoginInput{
			Email: "owner@abhishek.org.in", Password: "sufficiently-long",
		})
		require.Error(t, err)
	})

	t.Run("short_password_rejected", func(t *testing.T) {
		short := "tiny"
		_, err := service.UpdateProfile(ctx, admin.ID, admins.UpdateProfileInput{
			Password: &short,
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("unknown_identity_not_found", func(t *testing.T) {
		name := "Ghost"
		_, err := service.UpdateProfile(ctx, "missing-id", admins.UpdateProfileInput{Name: &name})
		require.Error(t, err)
	})
}
