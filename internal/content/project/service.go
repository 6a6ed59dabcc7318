// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package project

import (
	"context"
	"log/slog"

	"github.com/abhisheknv/portfolio-api/internal/platform/validate"
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

func (service *Service) List(context context.Context, adminID string, filter Filter, limit, offset int) ([]*Project, int, error) {
	return service.repo.List(context, adminID, filter, limit, offset)
}

func (service *Service) Get(context context.Context, adminID, id string) (*Project, error) {
	return service.repo.Get(context, adminID, id)
}

// Input holds a full project entry as sent by the dashboard.
type Input struct {
	Title        string
	Description  string
	Technologies []string
	Type         string
	ImageURL     string
	ProjectLink  string
}

func (service *Service) validate(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldDescription, input.Description).
		Required(FieldType, input.Type).
		OneOf(FieldType, input.Type, TypeFullStack, TypeFrontend, TypeBackend)

	if input.ImageURL != "" {
		validator.URL(FieldImageURL, input.ImageURL)
	}
	if input.ProjectLink != "" {
		validator.URL(FieldProjectLink, input.ProjectLink)
	}

	return validator.Err()
}

func (service *Service) Create(context context.Context, adminID string, input Input) (*Project, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry := &Project{
		ID:           uuid.New(),
		AdminID:      adminID,
		Title:        input.Title,
		Description:  input.Description,
		Technologies: input.Technologies,
		Type:         input.Type,
		ImageURL:     input.ImageURL,
		ProjectLink:  input.ProjectLink,
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("project_created", slog.String("title", entry.Title))
	return entry, nil
}

func (service *Service) Update(context context.Context, adminID, id string, input Input) (*Project, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry := &Project{
		ID:           id,
		AdminID:      adminID,
		Title:        input.Title,
		Description:  input.Description,
		Technologies: input.Technologies,
		Type:         input.Type,
		ImageURL:     input.ImageURL,
		ProjectLink:  input.ProjectLink,
	}

	if err := service.repo.Update(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("project_updated", slog.String("project_id", id))
	return entry, nil
}

func (service *Service) Delete(context context.Context, adminID, id string) error {
	if err := service.repo.Delete(context, adminID, id); err != nil {
		return err
	}

	service.logger.Warn("project_deleted", slog.String("project_id", id))
	return nil
}
