// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package about

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/abhisheknv/portfolio-api/internal/platform/request"
	"github.com/abhisheknv/portfolio-api/internal/platform/respond"
	"github.com/abhisheknv/portfolio-api/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the owner-facing about endpoints. The whole group is
// behind the session gate; the public projection lives elsewhere.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.get)
	// POST and PUT are the same upsert: the section either exists or it doesn't.
	router.Post("/", handler.save)
	router.Put("/", handler.save)
	router.Delete("/", handler.remove)
}

type saveRequest struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Hobbies      []string `json:"hobbies"`
	Goal         string   `json:"goal"`
	Learning     string   `json:"learning"`
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Get(request.Context(), adminID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input saveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entry, err := handler.service.Save(request.Context(), adminID, SaveInput{
		Title:        input.Title,
		Subtitle:     input.Subtitle,
		Description:  input.Description,
		Technologies: input.Technologies,
		Hobbies:      input.Hobbies,
		Goal:         input.Goal,
		Learning:     input.Learning,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	adminID, err := requestutil.RequiredAdminID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), adminID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
