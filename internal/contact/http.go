// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/abhisheknv/portfolio-api/internal/platform/request"
	"github.com/abhisheknv/portfolio-api/internal/platform/respond"
	"github.com/abhisheknv/portfolio-api/internal/platform/validate"
	"github.com/abhisheknv/portfolio-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the contact router. Submission is public; the inbox
// surface sits behind the session gate.
func (handler *Handler) Routes(gate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public intake
	router.Post("/", handler.submit)

	// Owner inbox
	router.Group(func(r chi.Router) {
		r.Use(gate)
		r.Get("/", handler.list)
		r.Get("/{id}", handler.get)
		r.Put("/{id}", handler.markRead)
		r.Delete("/{id}", handler.remove)
	})

	return router
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Message string `json:"message"`
}

/*
Submit accepts a visitor's contact form submission.

POST /api/v1/contact

Response:
  - 201: Message: Stored submission
  - 400: ErrInvalidJSON: Bad input or validation failure
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	message, err := handler.service.Submit(request.Context(), SubmitInput{
		Name:    input.Name,
		Email:   input.Email,
		Contact: input.Contact,
		Message: input.Message,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, message)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	messages, total, err := handler.service.List(request.Context(), adminID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, messages, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.Get(request.Context(), adminID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, message)
}

type markReadRequest struct {
	Read bool `json:"read"`
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input markReadRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	message, err := handler.service.MarkRead(request.Context(), adminID, requestutil.ID(request, "id"), input.Read)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, message)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), adminID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
