// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package admins

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/abhisheknv/portfolio-api/internal/platform/request"
	"github.com/abhisheknv/portfolio-api/internal/platform/respond"
	"github.com/abhisheknv/portfolio-api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements admin identity HTTP endpoints.
//
// # Scope
//
// This handler manages the owner lifecycle entry points (Signup, Login)
// plus the gated profile surface. It is strictly responsible for transport
// concerns (status codes, headers, JSON).
type Handler struct {
	adminService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// Routes returns a [chi.Router] configured with admin identity routes.
//
// The gate middleware wraps the profile surface; signup and login stay open
// so a session can be established in the first place.
//
// # Endpoints
//   - POST  /signup  : Creates the owner account.
//   - POST  /login   : Authenticates and returns a JWT.
//   - GET   /profile : Returns the authenticated owner's profile.
//   - PUT   /profile : Updates allow-listed profile fields.
func (handler *Handler) Routes(gate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(gate)
		r.Get("/profile", handler.profile)
		r.Put("/profile", handler.updateProfile)
	})

	return router
}

// # Request Payloads

type signupRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Contact       string `json:"contact"`
	ProfilePicURL string `json:"profile_pic_url"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Contact       *string `json:"contact"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

/*
Signup handles the creation of the owner account.

POST /api/v1/admin/signup

Response:
  - 201: Admin: Created owner profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	admin, err := handler.adminService.Signup(request.Context(), SignupInput{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Contact:       input.Contact,
		ProfilePicURL: input.ProfilePicURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, admin)
}

/*
Login authenticates the owner and establishes a session.

POST /api/v1/admin/login

Response:
  - 200: LoginSession: Signed JWT and owner profile
  - 400: ErrValidation: "Invalid Email" or "Invalid Password"
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.adminService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
Profile returns the authenticated owner's profile.

GET /api/v1/admin/profile

Response:
  - 200: Admin: Current profile row
  - 401: ErrUnauthorized: Missing/expired token or deleted identity
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	admin, err := handler.adminService.GetProfile(request.Context(), adminID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, admin)
}

/*
UpdateProfile applies allow-listed changes to the owner's profile.

PUT /api/v1/admin/profile

Response:
  - 200: Admin: Updated profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: New email already registered
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	admin, err := handler.adminService.UpdateProfile(request.Context(), adminID, UpdateProfileInput{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Contact:       input.Contact,
		ProfilePicURL: input.ProfilePicURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, admin)
}
