// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package admins

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisheknv/portfolio-api/internal/platform/apperr"
	"github.com/abhisheknv/portfolio-api/internal/platform/sec"
	"github.com/abhisheknv/portfolio-api/internal/platform/validate"
	"github.com/abhisheknv/portfolio-api/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer defines the contract for minting session tokens.
type TokenIssuer interface {
	// Issue creates a signed JWT string for the given admin.
	Issue(adminID, name string) (string, error)
}

// Service implements admin identity use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed before release.
type Service struct {
	repository  Repository
	tokenIssuer TokenIssuer
	logger      *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(repository Repository, tokenIssuer TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		repository:  repository,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// passwordMinLength is the shortest password accepted at signup and on
// password change.
const passwordMinLength = 6

// # Enrollment Flow

// SignupInput holds the data required to enroll a new portfolio owner.
type SignupInput struct {
	Name          string
	Email         string
	Password      string
	Contact       string
	ProfilePicURL string
}

/*
Signup validates, hashes, and persists a brand new admin account.

Description: Enrollment of a portfolio owner, handling password hashing
and email uniqueness.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *Admin: Created entity
  - err: Conflict (if the email is taken), validation, or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*Admin, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, passwordMinLength)

	if input.Contact != "" {
		validator.Phone(FieldContact, input.Contact)
	}
	if input.ProfilePicURL != "" {
		validator.URL(FieldProfilePicURL, input.ProfilePicURL)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	if _, err := service.repository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("admin_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	admin := &Admin{
		ID:            uuid.New(),
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  hashedPassword,
		Contact:       input.Contact,
		ProfilePicURL: input.ProfilePicURL,
	}

	if err := service.repository.Create(context, admin); err != nil {
		return nil, fmt.Errorf("admin_service_signup_failed: %w", err)
	}

	service.logger.Info("admin_enrolled", slog.String("admin_id", admin.ID))
	return admin, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established dashboard session.
type LoginSession struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}

/*
Login validates admin credentials and issues a session token.

Description: Verifies identity, performs constant-time password comparison
via bcrypt, and mints a stateless session JWT.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready token plus owner profile
  - err: Validation failures pinpointing which credential was wrong

The failure messages deliberately distinguish "Invalid Email" from
"Invalid Password"; this is a single-owner dashboard, so the usual
enumeration-resistance trade-off does not apply and the precise hint is
worth more to the one legitimate user.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	admin, err := service.repository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.ValidationError("Invalid Email")
	}

	if !sec.CheckPasswordHash(input.Password, admin.PasswordHash) {
		return nil, apperr.ValidationError("Invalid Password")
	}

	token, err := service.tokenIssuer.Issue(admin.ID, admin.Name)
	if err != nil {
		return nil, fmt.Errorf("admin_service_token_issue_failed: %w", err)
	}

	service.logger.Info("admin_logged_in", slog.String("admin_id", admin.ID))
	return &LoginSession{Token: token, Admin: admin}, nil
}

// # Profile Flow

/*
GetProfile returns the admin row for the authenticated identity.

Parameters:
  - context: context.Context
  - adminID: string

Returns:
  - *Admin: The owner's profile
  - err: NotFound if the identity row has been removed
*/
func (service *Service) GetProfile(context context.Context, adminID string) (*Admin, error) {
	return service.repository.FindByID(context, adminID)
}

// UpdateProfileInput holds the allow-listed profile fields an admin may change.
//
// Pointer fields distinguish "not sent" from "set to empty". A sent Password
// is re-hashed before it touches storage.
type UpdateProfileInput struct {
	Name          *string
	Email         *string
	Password      *string
	Contact       *string
	ProfilePicURL *string
}

/*
UpdateProfile applies allow-listed changes to the admin's own profile.

Description: Loads the current row, overlays only the fields present in the
input, validates the result, and persists it. Changing the email re-checks
uniqueness.

Parameters:
  - context: context.Context
  - adminID: string
  - input: UpdateProfileInput

Returns:
  - *Admin: Updated profile
  - err: Validation, Conflict, NotFound, or storage errors
*/
func (service *Service) UpdateProfile(context context.Context, adminID string, input UpdateProfileInput) (*Admin, error) {
	admin, err := service.repository.FindByID(context, adminID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		admin.Name = *input.Name
	}
	if input.Email != nil && *input.Email != admin.Email {
		// Re-check uniqueness only when the address actually changes.
		if _, err := service.repository.FindByEmail(context, *input.Email); err == nil {
			return nil, apperr.Conflict("Email is already registered")
		}
		admin.Email = *input.Email
	}
	if input.Contact != nil {
		admin.Contact = *input.Contact
	}
	if input.ProfilePicURL != nil {
		admin.ProfilePicURL = *input.ProfilePicURL
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, admin.Name).
		MaxLen(FieldName, admin.Name, 100).
		Required(FieldEmail, admin.Email).
		Email(FieldEmail, admin.Email)

	if admin.Contact != "" {
		validator.Phone(FieldContact, admin.Contact)
	}
	if admin.ProfilePicURL != "" {
		validator.URL(FieldProfilePicURL, admin.ProfilePicURL)
	}

	if input.Password != nil {
		validator.Required(FieldPassword, *input.Password).
			MinLen(FieldPassword, *input.Password, passwordMinLength)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hashedPassword, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("admin_service_hash_failed: %w", err)
		}
		admin.PasswordHash = hashedPassword
	}

	if err := service.repository.Update(context, admin); err != nil {
		return nil, err
	}

	service.logger.Info("admin_profile_updated", slog.String("admin_id", admin.ID))
	return admin, nil
}
