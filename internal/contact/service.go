// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisheknv/portfolio-api/internal/notify"
	"github.com/abhisheknv/portfolio-api/internal/platform/validate"
	"github.com/abhisheknv/portfolio-api/pkg/uuid"
)

// Service implements the contact intake pipeline.
type Service struct {
	repo           Repository
	channels       []notify.Channel
	defaultAdminID string
	logger         *slog.Logger
}

// NewService constructs a new [Service].
//
// defaultAdminID is the identity that owns public submissions; the system is
// single-tenant, so every message lands in the one owner's inbox. channels
// may be empty when no notifier is configured.
func NewService(repo Repository, channels []notify.Channel, defaultAdminID string, logger *slog.Logger) *Service {
	return &Service{
		repo:           repo,
		channels:       channels,
		defaultAdminID: defaultAdminID,
		logger:         logger,
	}
}

// SubmitInput holds a visitor's contact form submission.
type SubmitInput struct {
	Name    string
	Email   string
	Contact string
	Message string
}

/*
Submit validates, persists, and fans out a visitor submission.

Description: The row is stored first; notification delivery is sequential
(email, then WhatsApp) and best-effort. A channel failure is logged with the
message id and never surfaces to the visitor.

Parameters:
  - context: context.Context
  - input: SubmitInput

Returns:
  - *Message: The stored submission
  - err: Validation or storage errors only
*/
func (service *Service) Submit(context context.Context, input SubmitInput) (*Message, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldContact, input.Contact).
		Phone(FieldContact, input.Contact).
		Required(FieldMessage, input.Message).
		MaxLen(FieldMessage, input.Message, 5000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	message := &Message{
		ID:      uuid.New(),
		AdminID: service.defaultAdminID,
		Name:    input.Name,
		Email:   input.Email,
		Contact: input.Contact,
		Body:    input.Message,
	}

	if err := service.repo.Create(context, message); err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_stored",
		slog.String("message_id", message.ID),
		slog.String("from", message.Email),
	)

	service.notifyOwner(context, message)

	return message, nil
}

// notifyOwner fans the stored submission out to every configured channel.
func (service *Service) notifyOwner(context context.Context, message *Message) {
	if len(service.channels) == 0 {
		return
	}

	rendered := notify.Message{
		Subject: fmt.Sprintf("New contact message from %s", message.Name),
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nContact: %s\n\n%s",
			message.Name, message.Email, message.Contact, message.Body),
	}

	for _, channel := range service.channels {
		if err := channel.Send(context, rendered); err != nil {
			service.logger.Error("contact_notification_failed",
				slog.String("channel", channel.Name()),
				slog.String("message_id", message.ID),
				slog.String("error", err.Error()),
			)
			continue
		}

		service.logger.Info("contact_notification_sent",
			slog.String("channel", channel.Name()),
			slog.String("message_id", message.ID),
		)
	}
}

// # Owner Inbox

func (service *Service) List(context context.Context, adminID string, limit, offset int) ([]*Message, int, error) {
	return service.repo.List(context, adminID, limit, offset)
}

func (service *Service) Get(context context.Context, adminID, id string) (*Message, error) {
	return service.repo.Get(context, adminID, id)
}

// MarkRead sets a message's read flag to the given value, so the inbox can
// both mark and un-mark. Setting the flag to its current value is a no-op
// that still returns the row.
func (service *Service) MarkRead(context context.Context, adminID, id string, read bool) (*Message, error) {
	message, err := service.repo.MarkRead(context, adminID, id, read)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_read_set",
		slog.String("message_id", id),
		slog.Bool("read", read),
	)
	return message, nil
}

func (service *Service) Delete(context context.Context, adminID, id string) error {
	if err := service.repo.Delete(context, adminID, id); err != nil {
		return err
	}

	service.logger.Warn("contact_message_deleted", slog.String("message_id", id))
	return nil
}
