// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package blog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/abhisheknv/portfolio-api/internal/platform/apperr"
	"github.com/abhisheknv/portfolio-api/internal/platform/validate"
	"github.com/abhisheknv/portfolio-api/pkg/slug"
	"github.com/abhisheknv/portfolio-api/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context, adminID string, filter Filter, limit, offset int) ([]*Blog, int, error) {
	return service.repo.List(context, adminID, filter, limit, offset)
}

func (service *Service) Get(context context.Context, adminID, id string) (*Blog, error) {
	return service.repo.Get(context, adminID, id)
}

func (service *Service) GetBySlug(context context.Context, adminID, postSlug string) (*Blog, error) {
	return service.repo.GetBySlug(context, adminID, postSlug)
}

// Input holds a blog post as sent by the dashboard.
type Input struct {
	Title       string
	Description string
	Content     string
	ImageURL    string
}

func (service *Service) validate(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldDescription, input.Description).
		MaxLen(FieldDescription, input.Description, 1000).
		Required(FieldContent, input.Content)

	if input.ImageURL != "" {
		validator.URL(FieldImageURL, input.ImageURL)
	}

	return validator.Err()
}

// Create persists a new post. The slug is derived from the title; on a
// collision within the same owner the row id's prefix is appended so the
// post still lands instead of bouncing back to the dashboard.
func (service *Service) Create(context context.Context, adminID string, input Input) (*Blog, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry := &Blog{
		ID:          uuid.New(),
		AdminID:     adminID,
		Title:       input.Title,
		Slug:        slug.From(input.Title),
		Description: input.Description,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
	}

	err := service.repo.Create(context, entry)
	if isConflict(err) {
		entry.Slug = entry.Slug + "-" + entry.ID[:8]
		err = service.repo.Create(context, entry)
	}
	if err != nil {
		return nil, err
	}

	service.logger.Info("blog_created", slog.String("slug", entry.Slug))
	return entry, nil
}

// Update rewrites the post body. The slug is deliberately left untouched so
// published links keep resolving after a title edit.
func (service *Service) Update(context context.Context, adminID, id string, input Input) (*Blog, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry, err := service.repo.Get(context, adminID, id)
	if err != nil {
		return nil, err
	}

	entry.Title = input.Title
	entry.Description = input.Description
	entry.Content = input.Content
	entry.ImageURL = input.ImageURL

	if err := service.repo.Update(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("blog_updated", slog.String("blog_id", id))
	return entry, nil
}

func (service *Service) Delete(context context.Context, adminID, id string) error {
	if err := service.repo.Delete(context, adminID, id); err != nil {
		return err
	}

	service.logger.Warn("blog_deleted", slog.String("blog_id", id))
	return nil
}

func isConflict(err error) bool {
	if err == nil {
		return false
	}
	ae := apperr.As(err)
	return ae != nil && ae.HTTPStatus == http.StatusConflict
}
