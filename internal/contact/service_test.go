// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/contact"
	"github.com/abhisheknv/portfolio-api/internal/notify"
	"github.com/abhisheknv/portfolio-api/internal/platform/apperr"
	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

type fakeRepository struct {
	rows      []*contact.Message
	createErr error
}

func (f *fakeRepository) List(_ context.Context, adminID string, limit, offset int) ([]*contact.Message, int, error) {
	var matched []*contact.Message
	for _, row := range f.rows {
		if row.AdminID == adminID {
			matched = append(matched, row)
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) Get(_ context.Context, adminID, id string) (*contact.Message, error) {
	for _, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			return row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, m *contact.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows = append(f.rows, m)
	return nil
}

func (f *fakeRepository) MarkRead(_ context.Context, adminID, id string, read bool) (*contact.Message, error) {
	for _, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			row.Read = read
			return row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Delete(_ context.Context, adminID, id string) error {
	for i, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

// recordingChannel captures deliveries and optionally fails.
type recordingChannel struct {
	name    string
	sent    []notify.Message
	sendErr error
}

func (r *recordingChannel) Name() string { return r.name }

func (r *recordingChannel) Send(_ context.Context, message notify.Message) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.sent = append(r.sent, message)
	return nil
}

func newService(repo contact.Repository, channels ...notify.Channel) *contact.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return contact.NewService(repo, channels, "owner-1", logger)
}

func validInput() contact.SubmitInput {
	return contact.SubmitInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Contact: "+91 98765 43210",
		Message: "I would like to talk about a project.",
	}
}

/*
TestService_Submit covers validation, persistence, and the notification fan-out.
*/
func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists_under_default_owner", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newService(repo)

		message, err := service.Submit(ctx, validInput())
		require.NoError(t, err)

		assert.False(t, message.Read)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, "owner-1", repo.rows[0].AdminID)
	})

	t.Run("all_fields_required", func(t *testing.T) {
		service := newService(&fakeRepository{})

		_, err := service.Submit(ctx, contact.SubmitInput{})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Len(t, ae.Details, 4)
	})

	t.Run("fans_out_to_channels_in_order", func(t *testing.T) {
		email := &recordingChannel{name: "email"}
		whatsapp := &recordingChannel{name: "whatsapp"}
		service := newService(&fakeRepository{}, email, whatsapp)

		_, err := service.Submit(ctx, validInput())
		require.NoError(t, err)

		require.Len(t, email.sent, 1)
		require.Len(t, whatsapp.sent, 1)
		assert.Contains(t, email.sent[0].Subject, "Visitor")
		assert.Contains(t, email.sent[0].Body, "visitor@example.com")
	})

	t.Run("channel_failure_does_not_fail_submission", func(t *testing.T) {
		email := &recordingChannel{name: "email", sendErr: errors.New("smtp down")}
		whatsapp := &recordingChannel{name: "whatsapp"}
		repo := &fakeRepository{}
		service := newService(repo, email, whatsapp)

		_, err := service.Submit(ctx, validInput())
		require.NoError(t, err)

		// The failed channel is skipped; the next one still runs.
		assert.Len(t, repo.rows, 1)
		assert.Len(t, whatsapp.sent, 1)
	})

	t.Run("storage_failure_aborts_before_notifying", func(t *testing.T) {
		email := &recordingChannel{name: "email"}
		repo := &fakeRepository{createErr: apperr.Internal(errors.New("db down"))}
		service := newService(repo, email)

		_, err := service.Submit(ctx, validInput())
		require.Error(t, err)
		assert.Empty(t, email.sent)
	})
}

/*
TestService_MarkRead checks both directions of the read flag and its
idempotence.
*/
func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepository{}
	service := newService(repo)

	message, err := service.Submit(ctx, validInput())
	require.NoError(t, err)

	read, err := service.MarkRead(ctx, "owner-1", message.ID, true)
	require.NoError(t, err)
	assert.True(t, read.Read)

	// Second call is a no-op, not an error.
	again, err := service.MarkRead(ctx, "owner-1", message.ID, true)
	require.NoError(t, err)
	assert.True(t, again.Read)

	// The flag goes back down too: the inbox can un-read a message.
	unread, err := service.MarkRead(ctx, "owner-1", message.ID, false)
	require.NoError(t, err)
	assert.False(t, unread.Read)

	// Cross-owner access stays blocked.
	_, err = service.MarkRead(ctx, "owner-2", message.ID, true)
	require.Error(t, err)
}
