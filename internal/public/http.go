// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package public exposes the unauthenticated read-only mirror of the portfolio.

Every endpoint reads the single owner's content (resolved via the default
admin identity) and serves a restricted projection: internal ids, ownership
columns, and dashboard-only fields never leave this surface. Responses are
fronted by a short-TTL Redis cache.
*/
package public

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisheknv/portfolio-api/internal/admins"
	"github.com/abhisheknv/portfolio-api/internal/content/about"
	"github.com/abhisheknv/portfolio-api/internal/content/blog"
	"github.com/abhisheknv/portfolio-api/internal/content/course"
	"github.com/abhisheknv/portfolio-api/internal/content/experience"
	"github.com/abhisheknv/portfolio-api/internal/content/project"
	"github.com/abhisheknv/portfolio-api/internal/content/skill"
	requestutil "github.com/abhisheknv/portfolio-api/internal/platform/request"
	"github.com/abhisheknv/portfolio-api/internal/platform/respond"
	"github.com/abhisheknv/portfolio-api/pkg/pagination"
)

// defaultBlogPageSize matches the public site's feed layout.
const defaultBlogPageSize = 6

// Services bundles the read paths the mirror projects from.
type Services struct {
	Admins     *admins.Service
	About      *about.Service
	Experience *experience.Service
	Project    *project.Service
	Skill      *skill.Service
	Course     *course.Service
	Blog       *blog.Service
}

// Handler serves the public mirror.
type Handler struct {
	services Services
	ownerID  string
	cache    *ResponseCache
}

// NewHandler constructs the mirror over the given owner's content. cache
// may be nil, in which case responses are served uncached.
func NewHandler(services Services, ownerID string, cache *ResponseCache) *Handler {
	return &Handler{
		services: services,
		ownerID:  ownerID,
		cache:    cache,
	}
}

// Routes returns the public mirror router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	if handler.cache != nil {
		router.Use(handler.cache.Middleware)
	}

	router.Get("/profile", handler.profile)
	router.Get("/about", handler.about)
	router.Get("/experience", handler.experience)
	router.Get("/projects", handler.projects)
	router.Get("/skills", handler.skills)
	router.Get("/courses", handler.courses)
	router.Get("/blogs", handler.blogs)
	router.Get("/blogs/{slug}", handler.blogBySlug)

	return router
}

// # Projections
//
// Dedicated response shapes keep the public wire format independent of the
// domain entities: adding a dashboard-only column never leaks here.

type profileView struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Contact       string `json:"contact,omitempty"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}

type aboutView struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Hobbies      []string `json:"hobbies"`
	Goal         string   `json:"goal,omitempty"`
	Learning     string   `json:"learning,omitempty"`
}

type experienceView struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description string   `json:"description,omitempty"`
	TechUsed    []string `json:"tech_used"`
}

type projectView struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Type         string   `json:"type"`
	ImageURL     string   `json:"image_url,omitempty"`
	ProjectLink  string   `json:"project_link,omitempty"`
}

type skillView struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
}

type courseView struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// blogListView omits the post body: the feed only needs the teaser.
type blogListView struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type blogDetailView struct {
	blogListView
	Content string `json:"content"`
}

// # Handlers

func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	owner, err := handler.services.Admins.GetProfile(request.Context(), handler.ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profileView{
		Name:          owner.Name,
		Email:         owner.Email,
		Contact:       owner.Contact,
		ProfilePicURL: owner.ProfilePicURL,
	})
}

func (handler *Handler) about(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.services.About.Get(request.Context(), handler.ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, aboutView{
		Title:        entry.Title,
		Subtitle:     entry.Subtitle,
		Description:  entry.Description,
		Technologies: entry.Technologies,
		Hobbies:      entry.Hobbies,
		Goal:         entry.Goal,
		Learning:     entry.Learning,
	})
}

func (handler *Handler) experience(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.services.Experience.List(request.Context(), handler.ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]experienceView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, experienceView{
			Company:     entry.Company,
			Role:        entry.Role,
			StartDate:   entry.StartDate,
			EndDate:     entry.EndDate,
			Description: entry.Description,
			TechUsed:    entry.TechUsed,
		})
	}

	respond.OK(writer, views)
}

func (handler *Handler) projects(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := project.Filter{
		Query: request.URL.Query().Get("search"),
		Type:  request.URL.Query().Get("type"),
	}

	entries, total, err := handler.services.Project.List(request.Context(), handler.ownerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]projectView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, projectView{
			Title:        entry.Title,
			Description:  entry.Description,
			Technologies: entry.Technologies,
			Type:         entry.Type,
			ImageURL:     entry.ImageURL,
			ProjectLink:  entry.ProjectLink,
		})
	}

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) skills(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.services.Skill.List(request.Context(), handler.ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]skillView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, skillView{Name: entry.Name, IconURL: entry.IconURL})
	}

	respond.OK(writer, views)
}

func (handler *Handler) courses(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	entries, total, err := handler.services.Course.List(request.Context(), handler.ownerID, course.FilterFromRequest(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]courseView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, courseView{
			Title:       entry.Title,
			Description: entry.Description,
			Price:       entry.Price,
			Discount:    entry.Discount,
			ImageURL:    entry.ImageURL,
		})
	}

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) blogs(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequestWithDefault(request, defaultBlogPageSize)
	filter := blog.Filter{Query: request.URL.Query().Get("search")}

	entries, total, err := handler.services.Blog.List(request.Context(), handler.ownerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]blogListView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, blogListView{
			Title:       entry.Title,
			Slug:        entry.Slug,
			Description: entry.Description,
			ImageURL:    entry.ImageURL,
			PublishedAt: entry.CreatedAt,
		})
	}

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) blogBySlug(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.services.Blog.GetBySlug(request.Context(), handler.ownerID, requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blogDetailView{
		blogListView: blogListView{
			Title:       entry.Title,
			Slug:        entry.Slug,
			Description: entry.Description,
			ImageURL:    entry.ImageURL,
			PublishedAt: entry.CreatedAt,
		},
		Content: entry.Content,
	})
}
