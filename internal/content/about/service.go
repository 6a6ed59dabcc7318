// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package about

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

func (service *Service) Get(context context.Context, adminID string) (*About, error) {
	return service.repo.Get(context, adminID)
}

// SaveInput holds the full replacement state for the about section.
type SaveInput struct {
	Title        string
	Subtitle     string
	Description  string
	Technologies []string
	Hobbies      []string
	Goal         string
	Learning     string
}

// Save validates and upserts the owner's about section. There is at most
// one row per owner, so repeated saves overwrite in place.
func (service *Service) Save(context context.Context, adminID string, input SaveInput) (*About, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldDescription, input.Description).
		MaxLen(FieldDescription, input.Description, 5000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry := &About{
		ID:           uuid.New(),
		AdminID:      adminID,
		Title:        input.Title,
		Subtitle:     input.Subtitle,
		Description:  input.Description,
		Technologies: input.Technologies,
		Hobbies:      input.Hobbies,
		Goal:         input.Goal,
		Learning:     input.Learning,
	}

	if err := service.repo.Upsert(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("about_saved", slog.String("admin_id", adminID))
	return entry, nil
}

func (service *Service) Delete(context context.Context, adminID string) error {
	if err := service.repo.Delete(context, adminID); err != nil {
		return err
	}

	service.logger.Warn("about_deleted", slog.String("admin_id", adminID))
	return nil
}
