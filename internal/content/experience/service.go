// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package experience

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

func (service *Service) List(context context.Context, adminID string) ([]*Experience, error) {
	return service.repo.List(context, adminID)
}

func (service *Service) Get(context context.Context, adminID, id string) (*Experience, error) {
	return service.repo.Get(context, adminID, id)
}

// Input holds a full experience entry as sent by the dashboard.
type Input struct {
	Company     string
	Role        string
	StartDate   string
	EndDate     string
	Description string
	TechUsed    []string
}

func (service *Service) validate(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldCompany, input.Company).
		MaxLen(FieldCompany, input.Company, 200).
		Required(FieldRole, input.Role).
		MaxLen(FieldRole, input.Role, 200).
		Required(FieldStartDate, input.StartDate)

	return validator.Err()
}

func (service *Service) Create(context context.Context, adminID string, input Input) (*Experience, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	// An omitted end date means the role is ongoing.
	if input.EndDate == "" {
		input.EndDate = EndDateOngoing
	}

	entry := &Experience{
		ID:          uuid.New(),
		AdminID:     adminID,
		Company:     input.Company,
		Role:        input.Role,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		TechUsed:    input.TechUsed,
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("experience_created", slog.String("company", entry.Company))
	return entry, nil
}

func (service *Service) Update(context context.Context, adminID, id string, input Input) (*Experience, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	if input.EndDate == "" {
		input.EndDate = EndDateOngoing
	}

	entry := &Experience{
		ID:          id,
		AdminID:     adminID,
		Company:     input.Company,
		Role:        input.Role,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		TechUsed:    input.TechUsed,
	}

	if err := service.repo.Update(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("experience_updated", slog.String("experience_id", id))
	return entry, nil
}

func (service *Service) Delete(context context.Context, adminID, id string) error {
	if err := service.repo.Delete(context, adminID, id); err != nil {
		return err
	}

	service.logger.Warn("experience_deleted", slog.String("experience_id", id))
	return nil
}
