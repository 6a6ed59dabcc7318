// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package course

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

func (service *Service) List(context context.Context, adminID string, filter Filter, limit, offset int) ([]*Course, int, error) {
	return service.repo.List(context, adminID, filter, limit, offset)
}

func (service *Service) Get(context context.Context, adminID, id string) (*Course, error) {
	return service.repo.Get(context, adminID, id)
}

// Input holds a course listing as sent by the dashboard.
//
// Price is a pointer so an omitted price can be told apart from a free
// course priced at zero.
type Input struct {
	Title       string
	Description string
	Price       *float64
	Discount    float64
	ImageURL    string
}

func (service *Service) validate(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldDescription, input.Description).
		Custom(FieldPrice, input.Price == nil, "Price is required").
		Custom(FieldPrice, input.Price != nil && *input.Price < 0, "Must not be negative").
		Custom(FieldDiscount, input.Discount < 0 || input.Discount > 100, "Must be a percentage between 0 and 100")

	if input.ImageURL != "" {
		validator.URL(FieldImageURL, input.ImageURL)
	}

	return validator.Err()
}

func (service *Service) Create(context context.Context, adminID string, input Input) (*Course, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry := &Course{
		ID:          uuid.New(),
		AdminID:     adminID,
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
		Discount:    input.Discount,
		ImageURL:    input.ImageURL,
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("course_created", slog.String("title", entry.Title))
	return entry, nil
}

func (service *Service) Update(context context.Context, adminID, id string, input Input) (*Course, error) {
	if err := service.validate(input); err != nil {
		return nil, err
	}

	entry := &Course{
		ID:          id,
		AdminID:     adminID,
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
		Discount:    input.Discount,
		ImageURL:    input.ImageURL,
	}

	if err := service.repo.Update(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("course_updated", slog.String("course_id", id))
	return entry, nil
}

func (service *Service) Delete(context context.Context, adminID, id string) error {
	if err := service.repo.Delete(context, adminID, id); err != nil {
		return err
	}

	service.logger.Warn("course_deleted", slog.String("course_id", id))
	return nil
}
