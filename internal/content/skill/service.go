// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package skill

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

func (service *Service) List(context context.Context, adminID string) ([]*Skill, error) {
	return service.repo.List(context, adminID)
}

func (service *Service) Get(context context.Context, adminID, id string) (*Skill, error) {
	return service.repo.Get(context, adminID, id)
}

// Input holds a skill badge as sent by the dashboard.
type Input struct {
	Name    string
	IconURL string
}

func (service *Service) validate(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)

	if input.IconURL != "" {
		validator.URL(FieldIconURL, input.IconURL)
	}

	return validator.Err()
}

func (service *Service) Create(context context.Context, adminID string, input Input) (*Skill, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry := &Skill{
		ID:      uuid.New(),
		AdminID: adminID,
		Name:    input.Name,
		IconURL: input.IconURL,
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("skill_created", slog.String("name", entry.Name))
	return entry, nil
}

func (service *Service) Update(context context.Context, adminID, id string, input Input) (*Skill, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry := &Skill{
		ID:      id,
		AdminID: adminID,
		Name:    input.Name,
		IconURL: input.IconURL,
	}

	if err := service.repo.Update(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("skill_updated", slog.String("skill_id", id))
	return entry, nil
}

func (service *Service) Delete(context context.Context, adminID, id string) error {
	if err := service.repo.Delete(context, adminID, id); err != nil {
		return err
	}

	service.logger.Warn("skill_deleted", slog.String("skill_id", id))
	return nil
}
